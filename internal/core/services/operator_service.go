package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils"
)

type operatorService struct {
	operatorRepo portsrepo.OperatorRepositoryFacade
}

// NewOperatorService creates a new operator service.
func NewOperatorService(operatorRepo portsrepo.OperatorRepositoryFacade) portssvc.OperatorSvcFacade {
	return &operatorService{operatorRepo: operatorRepo}
}

var _ portssvc.OperatorSvcFacade = (*operatorService)(nil)

// Authenticate implements portssvc.OperatorSvcFacade. An unknown username and a wrong
// password both collapse to ErrForbidden so login responses do not leak which it was.
func (s *operatorService) Authenticate(ctx context.Context, username string, password string) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login attempt for unknown username", slog.String("username", username))
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up operator: %w", err)
	}

	if !utils.CheckPasswordHash(password, operator.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("username", username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	logger.Info("Operator authenticated", slog.String("operator_id", operator.OperatorID))
	return operator, nil
}

// GetOperatorByID implements portssvc.OperatorSvcFacade.
func (s *operatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find operator %s: %w", operatorID, err)
	}
	return operator, nil
}

// CreateOperator implements portssvc.OperatorSvcFacade.
func (s *operatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	operator := domain.Operator{
		OperatorID:   uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	logger.Info("Operator created", slog.String("operator_id", operator.OperatorID), slog.String("username", operator.Username))
	return &operator, nil
}
