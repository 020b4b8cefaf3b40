package ton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const rawAddr = "0:2cf3b5b8c891e517c9addbda1c0386a09ccacbcf38e88d8a2de2c5ff27c4d06b"

func TestParse_Raw(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedError bool
		expectedWC    int32
	}{
		{
			name:       "basechain address",
			input:      rawAddr,
			expectedWC: 0,
		},
		{
			name:       "masterchain address",
			input:      "-1:" + strings.Repeat("ab", 32),
			expectedWC: -1,
		},
		{
			name:          "bad workchain",
			input:         "x:" + strings.Repeat("ab", 32),
			expectedError: true,
		},
		{
			name:          "short account id",
			input:         "0:abcd",
			expectedError: true,
		},
		{
			name:          "account id not hex",
			input:         "0:" + strings.Repeat("zz", 32),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Parse(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedWC, addr.Workchain)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestAddress_FriendlyForms(t *testing.T) {
	addr, err := Parse(rawAddr)
	assert.NoError(t, err)

	nonBounceable := addr.ToNonBounceable()
	bounceable := addr.ToBounceable()

	// 36 bytes encode to exactly 48 base64 characters
	assert.Len(t, nonBounceable, 48)
	assert.Len(t, bounceable, 48)

	// Basechain tags: 0x51 encodes to "UQ", 0x11 to "EQ"
	assert.True(t, strings.HasPrefix(nonBounceable, "UQ"), nonBounceable)
	assert.True(t, strings.HasPrefix(bounceable, "EQ"), bounceable)
	assert.NotEqual(t, nonBounceable, bounceable)
}

func TestParse_FriendlyRoundTrip(t *testing.T) {
	original, err := Parse(rawAddr)
	assert.NoError(t, err)

	for _, friendly := range []string{original.ToNonBounceable(), original.ToBounceable()} {
		parsed, err := Parse(friendly)
		assert.NoError(t, err)
		assert.Equal(t, original, parsed)
	}
}

func TestParse_FriendlyChecksum(t *testing.T) {
	addr, err := Parse(rawAddr)
	assert.NoError(t, err)

	friendly := addr.ToNonBounceable()

	// Flip one character in the checksum region
	corrupted := []byte(friendly)
	if corrupted[47] == 'A' {
		corrupted[47] = 'B'
	} else {
		corrupted[47] = 'A'
	}

	_, err = Parse(string(corrupted))
	assert.Error(t, err)
}

func TestParse_FriendlyTestOnly(t *testing.T) {
	original := Address{Workchain: 0, TestOnly: true}
	copy(original.Hash[:], []byte(strings.Repeat("x", 32)))

	parsed, err := Parse(original.ToNonBounceable())
	assert.NoError(t, err)
	assert.True(t, parsed.TestOnly)
	assert.Equal(t, original, parsed)
}

func TestCRC16(t *testing.T) {
	// CRC-16/XMODEM check value for "123456789"
	assert.Equal(t, uint16(0x31C3), crc16([]byte("123456789")))
	assert.Equal(t, uint16(0), crc16(nil))
}
