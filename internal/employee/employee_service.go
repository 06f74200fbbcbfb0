package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "kamila-hrm/internal/employee/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (*EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string, filter EmployeeFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID string, id string) (*EmployeeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}

	pid, err := uuid.Parse(req.PositionID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidPositionID
	}

	hiringDate, err := time.Parse("2006-01-02", req.HiringDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHiringDate
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		did, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDepartmentID
		}
		departmentID = &did
	}

	ok, err := s.repo.PositionBelongsToCompany(ctx, companyID, pid.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, employeeerrors.ErrInvalidPositionID
	}

	record := &Employee{
		ID:                     uuid.New(),
		CompanyID:              cid,
		DepartmentID:           departmentID,
		PositionID:             pid,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Cedula:                 req.Cedula,
		HiringDate:             hiringDate,
		Location:               req.Location,
		BankName:               req.BankName,
		AccountType:            req.AccountType,
		EncryptedAccountNumber: req.EncryptedAccountNumber,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := mapToResponse(record)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter EmployeeFilter) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}

	records, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(records))
	for i := range records {
		responses = append(responses, mapToResponse(&records[i]))
	}
	return responses, nil
}

func (s *service) GetByID(ctx context.Context, companyID string, id string) (*EmployeeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	resp := mapToResponse(record)
	return &resp, nil
}

func mapToResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID.String(),
		CompanyID:   e.CompanyID.String(),
		PositionID:  e.PositionID.String(),
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Cedula:      e.Cedula,
		HiringDate:  e.HiringDate.Format("2006-01-02"),
		Location:    e.Location,
		BankName:    e.BankName,
		AccountType: e.AccountType,
	}
	if e.DepartmentID != nil {
		did := e.DepartmentID.String()
		resp.DepartmentID = &did
	}
	return resp
}
