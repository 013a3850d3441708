package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/payments/model"
	helper "learnsmate_backend/internals/helpers"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, m *model.PaymentModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *PaymentRepository) FindByCode(ctx context.Context, code string) (*model.PaymentModel, error) {
	var m model.PaymentModel
	if err := database.Conn(ctx, r.db).Where("payment_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindForUpdate locks the row so concurrent notifications apply in order.
func (r *PaymentRepository) FindForUpdate(ctx context.Context, code string) (*model.PaymentModel, error) {
	var m model.PaymentModel
	if err := database.Conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentRepository) ListByStudent(ctx context.Context, studentCode int64, p helper.Paging) ([]model.PaymentModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.PaymentModel{}).
		Where("student_code = ?", studentCode).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.PaymentModel
	err := q.Order("created_at DESC, payment_code DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

func (r *PaymentRepository) Updates(ctx context.Context, code string, fields map[string]any) error {
	return database.Conn(ctx, r.db).Model(&model.PaymentModel{}).
		Where("payment_code = ?", code).Updates(fields).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, code string) error {
	return database.Conn(ctx, r.db).Where("payment_code = ?", code).Delete(&model.PaymentModel{}).Error
}
