package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Company, error)
	GetLicenseStatus(ctx context.Context, id string) (string, error)
	UpdateLicenseStatus(ctx context.Context, id string, status string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	return &company, err
}

func (r *repository) GetLicenseStatus(ctx context.Context, id string) (string, error) {
	var status string
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Select("license_status").
		Where("id = ?", id).
		Scan(&status)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return status, nil
}

func (r *repository) UpdateLicenseStatus(ctx context.Context, id string, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Update("license_status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
