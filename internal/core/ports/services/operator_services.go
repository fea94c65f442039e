package services

import (
	"context"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// OperatorSvcFacade handles operator authentication and account management.
type OperatorSvcFacade interface {
	// Authenticate verifies the credentials and returns the operator on success.
	Authenticate(ctx context.Context, username string, password string) (*domain.Operator, error)

	// GetOperatorByID retrieves a specific operator.
	GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// CreateOperator registers a new operator account with a hashed password.
	// A taken username fails with ErrDuplicate.
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) (*domain.Operator, error)
}
