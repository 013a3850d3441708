package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/users/admins/model"
	helper "learnsmate_backend/internals/helpers"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, m *model.AdminModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *AdminRepository) FindByCode(ctx context.Context, code int64) (*model.AdminModel, error) {
	var m model.AdminModel
	if err := database.Conn(ctx, r.db).Where("admin_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminModel, error) {
	var m model.AdminModel
	if err := database.Conn(ctx, r.db).Where("admin_email = ?", email).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AdminRepository) FindByPhone(ctx context.Context, phone string) (*model.AdminModel, error) {
	var m model.AdminModel
	if err := database.Conn(ctx, r.db).Where("admin_phone = ?", phone).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.AdminModel{}).
		Where("admin_email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *AdminRepository) List(ctx context.Context, p helper.Paging) ([]model.AdminModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.AdminModel{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.AdminModel
	if err := q.Order("admin_code ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *AdminRepository) Updates(ctx context.Context, code int64, fields map[string]any) error {
	return database.Conn(ctx, r.db).Model(&model.AdminModel{}).
		Where("admin_code = ?", code).Updates(fields).Error
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, code int64, at time.Time) error {
	return database.Conn(ctx, r.db).Model(&model.AdminModel{}).
		Where("admin_code = ?", code).Update("admin_last_login", at).Error
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, code int64, hashed string) error {
	return database.Conn(ctx, r.db).Model(&model.AdminModel{}).
		Where("admin_code = ?", code).Update("admin_password", hashed).Error
}
