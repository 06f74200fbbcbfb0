package employee

import (
	"context"
	"testing"

	employeeerrors "kamila-hrm/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn             func(ctx context.Context, employee *Employee) error
	findAllFn            func(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, error)
	findByIDFn           func(ctx context.Context, companyID string, id string) (*Employee, error)
	positionInCompanyFn  func(ctx context.Context, companyID string, positionID string) (bool, error)
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, employee *Employee) error {
	return f.createFn(ctx, employee)
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, error) {
	return f.findAllFn(ctx, companyID, filter)
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	return f.findByIDFn(ctx, companyID, id)
}

func (f *fakeEmployeeRepository) PositionBelongsToCompany(ctx context.Context, companyID string, positionID string) (bool, error) {
	return f.positionInCompanyFn(ctx, companyID, positionID)
}

func validCreateRequest(positionID string) CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:  "Ana",
		LastName:   "Reyes",
		Cedula:     "001-1234567-8",
		HiringDate: "2024-03-15",
		PositionID: positionID,
		Location:   "Central",
	}
}

func TestCreate_PersistsRecordWithParsedFields(t *testing.T) {
	companyID := uuid.NewString()
	positionID := uuid.NewString()

	var saved *Employee
	repo := &fakeEmployeeRepository{
		createFn: func(ctx context.Context, employee *Employee) error {
			saved = employee
			return nil
		},
		positionInCompanyFn: func(ctx context.Context, cid string, pid string) (bool, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, positionID, pid)
			return true, nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.Create(context.Background(), companyID, validCreateRequest(positionID))

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, companyID, saved.CompanyID.String())
	assert.Equal(t, positionID, saved.PositionID.String())
	assert.Equal(t, "2024-03-15", saved.HiringDate.Format("2006-01-02"))
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.Equal(t, "2024-03-15", resp.HiringDate)
}

func TestCreate_RejectsPositionFromAnotherCompany(t *testing.T) {
	repo := &fakeEmployeeRepository{
		createFn: func(ctx context.Context, employee *Employee) error {
			t.Fatal("create must not be called")
			return nil
		},
		positionInCompanyFn: func(ctx context.Context, cid string, pid string) (bool, error) {
			return false, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), uuid.NewString(), validCreateRequest(uuid.NewString()))

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidPositionID)
}

func TestCreate_RejectsMalformedHiringDate(t *testing.T) {
	repo := &fakeEmployeeRepository{}

	req := validCreateRequest(uuid.NewString())
	req.HiringDate = "15/03/2024"

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), uuid.NewString(), req)

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidHiringDate)
}

func TestGetAll_PassesFilterThrough(t *testing.T) {
	companyID := uuid.NewString()
	filter := EmployeeFilter{Location: "Norte", PositionID: uuid.NewString()}

	repo := &fakeEmployeeRepository{
		findAllFn: func(ctx context.Context, cid string, got EmployeeFilter) ([]Employee, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, filter, got)
			return []Employee{}, nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.GetAll(context.Background(), companyID, filter)

	assert.NoError(t, err)
	assert.Empty(t, resp)
}

func TestGetByID_MapsRecordNotFound(t *testing.T) {
	repo := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, companyID string, id string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)
	_, err := svc.GetByID(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
