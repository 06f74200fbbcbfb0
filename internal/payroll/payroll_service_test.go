package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"kamila-hrm/internal/events"
	"kamila-hrm/internal/messaging/kafka"
	payrollerrors "kamila-hrm/internal/payroll/errors"
	"kamila-hrm/internal/payrollengine"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	createFn         func(ctx context.Context, result *PayrollResult) error
	findAllFn        func(ctx context.Context, companyID string) ([]PayrollResult, error)
	findByIDFn       func(ctx context.Context, companyID string, id string) (*PayrollResult, error)
	findBaseSalaryFn func(ctx context.Context, companyID string, employeeID string) (float64, error)
	markApprovedFn   func(ctx context.Context, companyID string, id string, approverID string, approvedAt time.Time) (bool, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakePayrollRepository) Create(ctx context.Context, result *PayrollResult) error {
	return f.createFn(ctx, result)
}

func (f *fakePayrollRepository) FindAllByCompany(ctx context.Context, companyID string) ([]PayrollResult, error) {
	return f.findAllFn(ctx, companyID)
}

func (f *fakePayrollRepository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollResult, error) {
	return f.findByIDFn(ctx, companyID, id)
}

func (f *fakePayrollRepository) FindBaseSalary(ctx context.Context, companyID string, employeeID string) (float64, error) {
	return f.findBaseSalaryFn(ctx, companyID, employeeID)
}

func (f *fakePayrollRepository) MarkApproved(ctx context.Context, companyID string, id string, approverID string, approvedAt time.Time) (bool, error) {
	return f.markApprovedFn(ctx, companyID, id, approverID, approvedAt)
}

type fakeVerifier struct {
	verifyFn func(ctx context.Context, recordID, presented, approverID string) (bool, error)
}

func (f *fakeVerifier) Verify(ctx context.Context, recordID, presented, approverID string) (bool, error) {
	return f.verifyFn(ctx, recordID, presented, approverID)
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func validCreatePayrollRequest(employeeID string) CreatePayrollRequest {
	return CreatePayrollRequest{
		EmployeeID:  employeeID,
		PeriodStart: "2024-06-01",
		PeriodEnd:   "2024-06-30",
	}
}

func pendingResult(companyID, employeeID uuid.UUID) *PayrollResult {
	gross := 50000.0
	d := payrollengine.Compute(gross)
	return &PayrollResult{
		ID:           uuid.New(),
		CompanyID:    companyID,
		EmployeeID:   employeeID,
		GrossSalary:  gross,
		SFSDeduction: d.SFS,
		AFPDeduction: d.AFP,
		ISRDeduction: d.ISR,
		NetSalary:    gross - d.TotalEmployee(),
		EmployerSFS:  d.EmployerSFS,
		EmployerAFP:  d.EmployerAFP,
		EmployerSRL:  d.EmployerSRL,
		Infotep:      d.Infotep,
		Status:       StatusPending,
	}
}

func TestPayrollCreate_ComputesDeductionsFromPositionSalary(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	companyID := uuid.NewString()
	actorID := uuid.NewString()
	employeeID := uuid.NewString()

	var saved *PayrollResult
	repo := &fakePayrollRepository{
		findBaseSalaryFn: func(ctx context.Context, cid, eid string) (float64, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			return 50000, nil
		},
		createFn: func(ctx context.Context, result *PayrollResult) error {
			saved = result
			return nil
		},
	}

	svc := NewService(db, repo, &fakeVerifier{})
	resp, err := svc.Create(context.Background(), companyID, actorID, validCreatePayrollRequest(employeeID))

	assert.NoError(t, err)
	assert.NotNil(t, saved)

	assert.InDelta(t, 1520.0, saved.SFSDeduction, 1e-9)
	assert.InDelta(t, 1435.0, saved.AFPDeduction, 1e-9)
	assert.InDelta(t, 22247.9985/12, saved.ISRDeduction, 1e-9)

	// Net is always gross minus the employee-side total, never stored
	// independently.
	d := payrollengine.Compute(50000)
	assert.Equal(t, 50000-d.TotalEmployee(), saved.NetSalary)

	assert.Equal(t, StatusPending, saved.Status)
	assert.False(t, saved.OTPVerified)
	assert.Equal(t, StatusPending, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollCreate_TwoCallsProduceDistinctRecords(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	companyID := uuid.NewString()
	actorID := uuid.NewString()
	employeeID := uuid.NewString()

	var ids []string
	repo := &fakePayrollRepository{
		findBaseSalaryFn: func(ctx context.Context, cid, eid string) (float64, error) {
			return 35000, nil
		},
		createFn: func(ctx context.Context, result *PayrollResult) error {
			ids = append(ids, result.ID.String())
			return nil
		},
	}

	svc := NewService(db, repo, &fakeVerifier{})
	req := validCreatePayrollRequest(employeeID)

	_, err := svc.Create(context.Background(), companyID, actorID, req)
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), companyID, actorID, req)
	assert.NoError(t, err)

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestPayrollCreate_UnknownEmployee(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakePayrollRepository{
		findBaseSalaryFn: func(ctx context.Context, cid, eid string) (float64, error) {
			return 0, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo, &fakeVerifier{})
	_, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), validCreatePayrollRequest(uuid.NewString()))

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestPayrollCreate_RejectsReversedPeriod(t *testing.T) {
	db, _ := newTxDB(t)

	svc := NewService(db, &fakePayrollRepository{}, &fakeVerifier{})
	req := CreatePayrollRequest{
		EmployeeID:  uuid.NewString(),
		PeriodStart: "2024-06-30",
		PeriodEnd:   "2024-06-01",
	}

	_, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), req)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)
}

func TestPayrollApprove_HappyPath(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	companyID := uuid.New()
	approverID := uuid.NewString()
	record := pendingResult(companyID, uuid.New())

	var casTimestamp time.Time
	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return record, nil
		},
		markApprovedFn: func(ctx context.Context, cid, id, aid string, at time.Time) (bool, error) {
			assert.Equal(t, companyID.String(), cid)
			assert.Equal(t, record.ID.String(), id)
			assert.Equal(t, approverID, aid)
			casTimestamp = at
			return true, nil
		},
	}

	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, recordID, presented, aid string) (bool, error) {
			assert.Equal(t, record.ID.String(), recordID)
			assert.Equal(t, "482913", presented)
			return true, nil
		},
	}

	outbox := &fakeOutboxRepository{}
	svc := NewServiceWithOutbox(db, repo, verifier, outbox)

	resp, err := svc.Approve(context.Background(), companyID.String(), approverID, record.ID.String(), ApprovePayrollRequest{OTP: "482913"})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.True(t, resp.OTPVerified)
	assert.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, approverID, *resp.ApprovedBy)
	assert.NoError(t, mock.ExpectationsWereMet())

	// The timestamp in the response is the one bound into the swap, so a
	// later read of the row reports the same instant.
	assert.NotNil(t, resp.ApprovedAt)
	assert.Equal(t, casTimestamp.Format(time.RFC3339), *resp.ApprovedAt)

	// One outbox row rides the same transaction as the status swap.
	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.PayrollApprovedTopic, outbox.created[0].Topic)
	assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)

	var evt events.PayrollApprovedEvent
	assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &evt))
	assert.Equal(t, record.ID.String(), evt.PayrollID)
	assert.Equal(t, record.NetSalary, evt.NetSalary)
	assert.Equal(t, approverID, evt.ApprovedBy)
}

func TestPayrollApprove_WrongOTPLeavesRecordPending(t *testing.T) {
	db, _ := newTxDB(t)

	record := pendingResult(uuid.New(), uuid.New())
	marked := false

	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return record, nil
		},
		markApprovedFn: func(ctx context.Context, cid, id, aid string, at time.Time) (bool, error) {
			marked = true
			return true, nil
		},
	}

	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, recordID, presented, aid string) (bool, error) {
			return false, nil
		},
	}

	svc := NewService(db, repo, verifier)
	_, err := svc.Approve(context.Background(), record.CompanyID.String(), uuid.NewString(), record.ID.String(), ApprovePayrollRequest{OTP: "000000"})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidOTP)
	assert.False(t, marked)
}

func TestPayrollApprove_AlreadyApproved(t *testing.T) {
	db, _ := newTxDB(t)

	record := pendingResult(uuid.New(), uuid.New())
	record.Status = StatusApproved

	verified := false
	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return record, nil
		},
	}
	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, recordID, presented, aid string) (bool, error) {
			verified = true
			return true, nil
		},
	}

	svc := NewService(db, repo, verifier)
	_, err := svc.Approve(context.Background(), record.CompanyID.String(), uuid.NewString(), record.ID.String(), ApprovePayrollRequest{OTP: "482913"})

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollAlreadyApproved)
	// No code is consumed for a record that cannot be approved.
	assert.False(t, verified)
}

func TestPayrollApprove_ConcurrentApprovalLosesRace(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	record := pendingResult(uuid.New(), uuid.New())

	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return record, nil
		},
		markApprovedFn: func(ctx context.Context, cid, id, aid string, at time.Time) (bool, error) {
			// Someone else flipped the status between our read and the swap.
			return false, nil
		},
	}
	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, recordID, presented, aid string) (bool, error) {
			return true, nil
		},
	}

	svc := NewService(db, repo, verifier)
	_, err := svc.Approve(context.Background(), record.CompanyID.String(), uuid.NewString(), record.ID.String(), ApprovePayrollRequest{OTP: "482913"})

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollAlreadyApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollGetByID_CrossTenantLooksLikeMissing(t *testing.T) {
	db, _ := newTxDB(t)

	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo, &fakeVerifier{})
	_, err := svc.GetByID(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayrollGetBreakdown_SplitsEmployeeAndEmployerSides(t *testing.T) {
	db, _ := newTxDB(t)

	record := pendingResult(uuid.New(), uuid.New())
	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*PayrollResult, error) {
			return record, nil
		},
	}

	svc := NewService(db, repo, &fakeVerifier{})
	resp, err := svc.GetBreakdown(context.Background(), record.CompanyID.String(), record.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, record.GrossSalary, resp.Gross)
	assert.Equal(t, record.SFSDeduction, resp.Deductions.SFS)
	assert.Equal(t, record.AFPDeduction, resp.Deductions.AFP)
	assert.Equal(t, record.ISRDeduction, resp.Deductions.ISR)
	assert.Equal(t, record.NetSalary, resp.Net)
	assert.Equal(t, record.EmployerSFS, resp.EmployerContributions.SFS)
	assert.Equal(t, record.EmployerSRL, resp.EmployerContributions.SRL)
	assert.Equal(t, record.Infotep, resp.EmployerContributions.Infotep)
}
