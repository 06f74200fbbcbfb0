package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kamila-hrm/internal/payroll"
	payrollerrors "kamila-hrm/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	createFn       func(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn       func(ctx context.Context, companyID string) ([]payroll.PayrollResponse, error)
	getByIDFn      func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	getBreakdownFn func(ctx context.Context, companyID, id string) (payroll.PayrollBreakdownResponse, error)
	approveFn      func(ctx context.Context, companyID, approverID, id string, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error)
}

func (f *fakePayrollService) Create(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, companyID, actorID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, companyID string) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, companyID)
}

func (f *fakePayrollService) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakePayrollService) GetBreakdown(ctx context.Context, companyID, id string) (payroll.PayrollBreakdownResponse, error) {
	return f.getBreakdownFn(ctx, companyID, id)
}

func (f *fakePayrollService) Approve(ctx context.Context, companyID, approverID, id string, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error) {
	return f.approveFn(ctx, companyID, approverID, id, req)
}

func TestPayrollHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, cid, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				CompanyID:  cid,
				EmployeeID: req.EmployeeID,
				Status:     payroll.StatusPending,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","period_start":"2024-06-01","period_end":"2024-06-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)
	c.Set("user_id", actorID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Create_MissingEmployeeID(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period_start":"2024-06-01","period_end":"2024-06-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Approve(t *testing.T) {
	companyID := uuid.New().String()
	approverID := uuid.New().String()
	id := uuid.New().String()

	svc := &fakePayrollService{
		approveFn: func(ctx context.Context, cid, aid, pid string, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, approverID, aid)
			assert.Equal(t, id, pid)
			assert.Equal(t, "482913", req.OTP)
			return payroll.PayrollResponse{ID: id, Status: payroll.StatusApproved, OTPVerified: true}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+id+"/approve", strings.NewReader(`{"otp":"482913"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("company_id", companyID)
	c.Set("employee_id", approverID)

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Approve_InvalidOTP(t *testing.T) {
	svc := &fakePayrollService{
		approveFn: func(ctx context.Context, cid, aid, pid string, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrInvalidOTP
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/123/approve", strings.NewReader(`{"otp":"000000"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Approve(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_OTP", env.Error.Code)
}

func TestPayrollHandler_Approve_AlreadyApproved(t *testing.T) {
	svc := &fakePayrollService{
		approveFn: func(ctx context.Context, cid, aid, pid string, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollAlreadyApproved
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/123/approve", strings.NewReader(`{"otp":"482913"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "ALREADY_APPROVED", env.Error.Code)
}

type fakeIssuer struct {
	recordID   string
	approverID string
}

func (f *fakeIssuer) Issue(ctx context.Context, recordID, approverID string) (string, error) {
	f.recordID = recordID
	f.approverID = approverID
	return "482913", nil
}

func TestPayrollHandler_RequestOTP(t *testing.T) {
	companyID := uuid.New().String()
	approverID := uuid.New().String()
	id := uuid.New().String()

	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, cid, pid string) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, id, pid)
			return payroll.PayrollResponse{ID: pid, Status: payroll.StatusPending}, nil
		},
	}

	issuer := &fakeIssuer{}
	h := payroll.NewHandlerWithRedis(svc, nil, issuer)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+id+"/otp", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("company_id", companyID)
	c.Set("employee_id", approverID)

	h.RequestOTP(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, id, issuer.recordID)
	assert.Equal(t, approverID, issuer.approverID)

	// The code must never travel back to the caller.
	assert.NotContains(t, w.Body.String(), "482913")
}

func TestPayrollHandler_GetById_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, cid, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/123", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayrollHandler_GetAll_Paginates(t *testing.T) {
	companyID := uuid.New().String()

	all := make([]payroll.PayrollResponse, 25)
	for i := range all {
		all[i] = payroll.PayrollResponse{ID: uuid.New().String(), Status: payroll.StatusPending}
	}

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, cid string) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			return all, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?page=2&page_size=10", nil)
	c.Set("company_id", companyID)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []payroll.PayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 10)
	assert.Equal(t, all[10].ID, page[0].ID)
}
