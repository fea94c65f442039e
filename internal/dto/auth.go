package dto

import "github.com/qahwatech/cafe_backoffice_app/internal/core/domain"

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token for subsequent requests.
type LoginResponse struct {
	Token      string `json:"token"`
	OperatorID string `json:"operatorID"`
	Name       string `json:"name"`
}

// CreateOperatorRequest carries the fields for registering a new operator account.
type CreateOperatorRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// OperatorResponse is the public view of an operator. The password hash never leaves
// the service layer.
type OperatorResponse struct {
	OperatorID string `json:"operatorID"`
	Username   string `json:"username"`
	Name       string `json:"name"`
}

// ToOperatorResponse converts a domain.Operator to its public response DTO.
func ToOperatorResponse(o *domain.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID: o.OperatorID,
		Username:   o.Username,
		Name:       o.Name,
	}
}
