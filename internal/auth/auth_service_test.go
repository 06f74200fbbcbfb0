package auth

import (
	"context"
	"os"
	"testing"

	autherrors "kamila-hrm/internal/auth/errors"
	"kamila-hrm/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	byEmail map[string]*User
	byID    map[uuid.UUID]*User
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRBACService struct {
	loadedCompanies []string
}

func (f *fakeRBACService) LoadCompanyPolicy(companyID string) error {
	f.loadedCompanies = append(f.loadedCompanies, companyID)
	return nil
}

func (f *fakeRBACService) Enforce(req domain.EnforceRequest) (bool, error) {
	return true, nil
}

type fakeLicenseVerifier struct {
	active bool
}

func (f *fakeLicenseVerifier) IsActive(ctx context.Context, companyID string) (bool, error) {
	return f.active, nil
}

func newTestUser(t *testing.T, password string) *User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	employeeID := uuid.New()
	return &User{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		EmployeeID: &employeeID,
		Name:       "Maria Castillo",
		Email:      "maria@acme.do",
		Password:   string(hashed),
		Role:       "HR",
		IsActive:   true,
	}
}

func TestLogin_IssuesTokenWithTenantClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := newTestUser(t, "hunter22")
	repo := &fakeAuthRepository{byEmail: map[string]*User{user.Email: user}}
	rbacSvc := &fakeRBACService{}

	svc := NewService(repo, rbacSvc, &fakeLicenseVerifier{active: true})
	accessToken, refreshToken, resp, err := svc.Login(context.Background(), user.Email, "hunter22")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, user.CompanyID.String(), resp.CompanyID)
	assert.Equal(t, []string{user.CompanyID.String()}, rbacSvc.loadedCompanies)

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	assert.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.CompanyID.String(), claims["company_id"])
	assert.Equal(t, user.EmployeeID.String(), claims["employee_id"])
	assert.Equal(t, "HR", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := newTestUser(t, "hunter22")
	repo := &fakeAuthRepository{byEmail: map[string]*User{user.Email: user}}

	svc := NewService(repo, &fakeRBACService{}, &fakeLicenseVerifier{active: true})
	_, _, _, err := svc.Login(context.Background(), user.Email, "not-the-password")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeAuthRepository{byEmail: map[string]*User{}}

	svc := NewService(repo, &fakeRBACService{}, &fakeLicenseVerifier{active: true})
	_, _, _, err := svc.Login(context.Background(), "nobody@acme.do", "whatever")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_SuspendedLicenseBlocksEntry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := newTestUser(t, "hunter22")
	repo := &fakeAuthRepository{byEmail: map[string]*User{user.Email: user}}
	rbacSvc := &fakeRBACService{}

	svc := NewService(repo, rbacSvc, &fakeLicenseVerifier{active: false})
	_, _, _, err := svc.Login(context.Background(), user.Email, "hunter22")

	assert.ErrorIs(t, err, autherrors.ErrLicenseSuspended)
	assert.Empty(t, rbacSvc.loadedCompanies)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := newTestUser(t, "hunter22")
	repo := &fakeAuthRepository{
		byEmail: map[string]*User{user.Email: user},
		byID:    map[uuid.UUID]*User{user.ID: user},
	}

	svc := NewService(repo, &fakeRBACService{}, &fakeLicenseVerifier{active: true})
	_, refreshToken, _, err := svc.Login(context.Background(), user.Email, "hunter22")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.ID.String(), resp.ID)
}

func TestRefreshToken_GarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeAuthRepository{}, &fakeRBACService{}, &fakeLicenseVerifier{active: true})
	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestGetMe_UnknownUser(t *testing.T) {
	svc := NewService(&fakeAuthRepository{byID: map[uuid.UUID]*User{}}, &fakeRBACService{}, &fakeLicenseVerifier{active: true})

	_, err := svc.GetMe(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
