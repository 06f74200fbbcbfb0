package position

import (
	"context"
	"net/http"

	"kamila-hrm/internal/shared/apperror"

	"github.com/google/uuid"
)

var (
	errInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	errPositionNotFound = apperror.New(apperror.CodeNotFound, "position not found", http.StatusNotFound)
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PositionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PositionResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreatePositionRequest,
) (PositionResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PositionResponse{}, errInvalidCompanyID
	}

	position := &Position{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
	}

	if err := s.repo.Create(ctx, position); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*position), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]PositionResponse, error) {
	positions, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]PositionResponse, len(positions))
	for i, position := range positions {
		resp[i] = mapToResponse(position)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PositionResponse, error) {
	position, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PositionResponse{}, errPositionNotFound
	}

	return mapToResponse(*position), nil
}

func mapToResponse(position Position) PositionResponse {
	return PositionResponse{
		ID:         position.ID.String(),
		CompanyID:  position.CompanyID.String(),
		Name:       position.Name,
		BaseSalary: position.BaseSalary,
	}
}
