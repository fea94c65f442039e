package models

import "time"

// Operator mirrors a row of the operators table.
type Operator struct {
	OperatorID   string     `db:"operator_id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Name         string     `db:"name"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
