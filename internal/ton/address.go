package ton

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// User-friendly address tags.
const (
	tagBounceable    byte = 0x11
	tagNonBounceable byte = 0x51
	tagTestOnly      byte = 0x80
)

// Address is a TON account address: workchain plus 256-bit account id.
type Address struct {
	Workchain int32
	Hash      [32]byte
	TestOnly  bool
}

// Parse accepts the raw form ("0:<64 hex>") and the 48-character
// user-friendly base64 form.
func Parse(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return parseRaw(s)
	}
	return parseFriendly(s)
}

func parseRaw(s string) (Address, error) {
	var a Address

	parts := strings.SplitN(s, ":", 2)
	wc, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return a, fmt.Errorf("invalid workchain %q: %w", parts[0], err)
	}

	hash, err := hex.DecodeString(parts[1])
	if err != nil {
		return a, fmt.Errorf("invalid account id: %w", err)
	}
	if len(hash) != 32 {
		return a, fmt.Errorf("account id must be 32 bytes, got %d", len(hash))
	}

	a.Workchain = int32(wc)
	copy(a.Hash[:], hash)
	return a, nil
}

func parseFriendly(s string) (Address, error) {
	var a Address

	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		// Wallets occasionally hand out the standard alphabet instead.
		data, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			return a, fmt.Errorf("invalid address encoding: %w", err)
		}
	}
	if len(data) != 36 {
		return a, fmt.Errorf("address must decode to 36 bytes, got %d", len(data))
	}

	if crc := crc16(data[:34]); data[34] != byte(crc>>8) || data[35] != byte(crc) {
		return a, fmt.Errorf("address checksum mismatch")
	}

	tag := data[0]
	if tag&tagTestOnly != 0 {
		a.TestOnly = true
		tag &^= tagTestOnly
	}
	if tag != tagBounceable && tag != tagNonBounceable {
		return a, fmt.Errorf("unknown address tag 0x%02x", tag)
	}

	a.Workchain = int32(int8(data[1]))
	copy(a.Hash[:], data[2:34])
	return a, nil
}

// String returns the raw form.
func (a Address) String() string {
	return fmt.Sprintf("%d:%s", a.Workchain, hex.EncodeToString(a.Hash[:]))
}

// ToNonBounceable returns the canonical display form shown to users.
func (a Address) ToNonBounceable() string {
	return a.friendly(tagNonBounceable)
}

// ToBounceable returns the bounceable user-friendly form.
func (a Address) ToBounceable() string {
	return a.friendly(tagBounceable)
}

func (a Address) friendly(tag byte) string {
	if a.TestOnly {
		tag |= tagTestOnly
	}

	buf := make([]byte, 36)
	buf[0] = tag
	buf[1] = byte(int8(a.Workchain))
	copy(buf[2:34], a.Hash[:])

	crc := crc16(buf[:34])
	buf[34] = byte(crc >> 8)
	buf[35] = byte(crc)

	// 36 bytes encode to exactly 48 characters, no padding
	return base64.URLEncoding.EncodeToString(buf)
}

// crc16 is CRC-16/XMODEM (poly 0x1021, init 0), as used by address tooling.
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
