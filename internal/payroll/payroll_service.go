package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"kamila-hrm/internal/events"
	"kamila-hrm/internal/messaging/kafka"
	"kamila-hrm/internal/otp"
	payrollerrors "kamila-hrm/internal/payroll/errors"
	"kamila-hrm/internal/payrollengine"
	"kamila-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, companyID, id string) (PayrollBreakdownResponse, error)
	Approve(ctx context.Context, companyID, approverID, id string, req ApprovePayrollRequest) (PayrollResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	verifier otp.Verifier
	outbox   kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository, verifier otp.Verifier) Service {
	return &service{db: db, repo: repo, verifier: verifier}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, verifier otp.Verifier, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, verifier: verifier, outbox: outbox}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	companyUUID, employeeUUID, periodStart, periodEnd, err := validateCreateRequest(companyID, actorID, req)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	gross, err := s.repo.FindBaseSalary(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	deductions := payrollengine.Compute(gross)

	// Two calls with identical arguments intentionally produce two records;
	// request dedup happens at the transport layer via Idempotency-Key.
	result := &PayrollResult{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		EmployeeID:   employeeUUID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		GrossSalary:  gross,
		SFSDeduction: deductions.SFS,
		AFPDeduction: deductions.AFP,
		ISRDeduction: deductions.ISR,
		NetSalary:    gross - deductions.TotalEmployee(),
		EmployerSFS:  deductions.EmployerSFS,
		EmployerAFP:  deductions.EmployerAFP,
		EmployerSRL:  deductions.EmployerSRL,
		Infotep:      deductions.Infotep,
		Status:       StatusPending,
		OTPVerified:  false,
	}

	if err := qtx.Create(ctx, result); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*result), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]PayrollResponse, error) {
	results, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(results), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	result, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*result), nil
}

func (s *service) GetBreakdown(
	ctx context.Context,
	companyID, id string,
) (PayrollBreakdownResponse, error) {
	result, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollBreakdownResponse{}, mapRepositoryError(err)
	}

	return PayrollBreakdownResponse{
		ID:    result.ID.String(),
		Gross: result.GrossSalary,
		Deductions: PayrollDeductionsBreakdown{
			SFS: result.SFSDeduction,
			AFP: result.AFPDeduction,
			ISR: result.ISRDeduction,
		},
		Net: result.NetSalary,
		EmployerContributions: PayrollEmployerBreakdown{
			SFS:     result.EmployerSFS,
			AFP:     result.EmployerAFP,
			SRL:     result.EmployerSRL,
			Infotep: result.Infotep,
		},
	}, nil
}

// Approve moves one pending payroll to approved. The OTP check happens before
// any write; the status flip, approver stamp and otp_verified flag land in a
// single compare-and-swap so no observer can see them separately.
func (s *service) Approve(
	ctx context.Context,
	companyID, approverID, id string,
	req ApprovePayrollRequest,
) (PayrollResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}

	// The gate refuses to run without a resolved approver identity; role
	// enforcement already happened in the authorization middleware.
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidApproverID
	}

	result, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if result.Status != StatusPending {
		return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyApproved
	}

	ok, err := s.verifier.Verify(ctx, id, req.OTP, approverID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !ok {
		return PayrollResponse{}, payrollerrors.ErrInvalidOTP
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	approvedAt := time.Now().UTC()

	swapped, err := qtx.MarkApproved(ctx, companyID, id, approverID, approvedAt)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !swapped {
		// A concurrent approval won the race between our read and the swap.
		return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyApproved
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.PayrollApprovedEvent{
			EventType:  "payroll.approved",
			PayrollID:  result.ID.String(),
			CompanyID:  result.CompanyID.String(),
			EmployeeID: result.EmployeeID.String(),
			NetSalary:  result.NetSalary,
			ApprovedBy: approverID,
			OccurredAt: approvedAt,
		})
		if err != nil {
			return PayrollResponse{}, err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "payroll",
			AggregateID:   result.ID.String(),
			EventType:     "payroll.approved",
			Topic:         events.PayrollApprovedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	result.Status = StatusApproved
	result.OTPVerified = true
	result.ApprovedBy = &approverUUID
	result.ApprovedAt = &approvedAt

	return mapToResponse(*result), nil
}

func validateCreateRequest(
	companyID, actorID string,
	req CreatePayrollRequest,
) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidCompanyID
	}

	if _, err := uuid.Parse(actorID); err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidActorID
	}

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidEmployeeID
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}

	if periodStart.After(periodEnd) {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}

	return companyUUID, employeeUUID, periodStart, periodEnd, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(result PayrollResult) PayrollResponse {
	resp := PayrollResponse{
		ID:           result.ID.String(),
		CompanyID:    result.CompanyID.String(),
		EmployeeID:   result.EmployeeID.String(),
		PeriodStart:  result.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    result.PeriodEnd.Format("2006-01-02"),
		GrossSalary:  result.GrossSalary,
		SFSDeduction: result.SFSDeduction,
		AFPDeduction: result.AFPDeduction,
		ISRDeduction: result.ISRDeduction,
		NetSalary:    result.NetSalary,
		EmployerSFS:  result.EmployerSFS,
		EmployerAFP:  result.EmployerAFP,
		EmployerSRL:  result.EmployerSRL,
		Infotep:      result.Infotep,
		Status:       result.Status,
		OTPVerified:  result.OTPVerified,
	}

	if result.ApprovedBy != nil {
		v := result.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if result.ApprovedAt != nil {
		v := result.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}

	return resp
}

func mapToListResponse(results []PayrollResult) []PayrollResponse {
	resp := make([]PayrollResponse, len(results))
	for i, result := range results {
		resp[i] = mapToResponse(result)
	}
	return resp
}
