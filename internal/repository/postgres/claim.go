package postgres

import (
	"database/sql"
)

// ClaimRepo implements repository.ClaimRepository
type ClaimRepo struct {
	db *sql.DB
}

// NewClaimRepo creates a new claim repository
func NewClaimRepo(db *sql.DB) *ClaimRepo {
	return &ClaimRepo{db: db}
}

// Exists checks whether the user or the wallet already received a reward
func (r *ClaimRepo) Exists(userID, walletAddress string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM claims WHERE user_id = $1 OR wallet_address = $2)`
	err := r.db.QueryRow(query, userID, walletAddress).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Insert records a claim. ON CONFLICT DO NOTHING covers both unique columns,
// so a lost race reports zero affected rows instead of an error.
func (r *ClaimRepo) Insert(userID, walletAddress string, assignedKey int64) (bool, error) {
	query := `
		INSERT INTO claims (user_id, wallet_address, assigned_key)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	res, err := r.db.Exec(query, userID, walletAddress, assignedKey)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// NextSequenceValue returns the next free claim key based on the highest one recorded
func (r *ClaimRepo) NextSequenceValue() (int64, error) {
	var next int64
	query := `SELECT COALESCE(MAX(assigned_key), 0) + 1 FROM claims`
	err := r.db.QueryRow(query).Scan(&next)
	return next, err
}
