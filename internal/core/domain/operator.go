package domain

import "time"

// Operator is an authenticated back-office user. Every write in the system stamps the
// acting operator's id as created_by.
type Operator struct {
	OperatorID   string     `json:"operatorID"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}
