package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/users/members/model"
	helper "learnsmate_backend/internals/helpers"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *model.MemberModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *MemberRepository) FindByCode(ctx context.Context, code int64) (*model.MemberModel, error) {
	var m model.MemberModel
	if err := database.Conn(ctx, r.db).Where("member_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*model.MemberModel, error) {
	var m model.MemberModel
	if err := database.Conn(ctx, r.db).Where("member_email = ?", email).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.MemberModel{}).
		Where("member_email = ?", email).Count(&n).Error
	return n > 0, err
}

// ListByType pages members of one type, newest first.
func (r *MemberRepository) ListByType(ctx context.Context, memberType string, p helper.Paging) ([]model.MemberModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.MemberModel{}).Where("member_type = ?", memberType).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.MemberModel
	if err := q.Order("created_at DESC, member_code DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *MemberRepository) Updates(ctx context.Context, code int64, fields map[string]any) error {
	return database.Conn(ctx, r.db).Model(&model.MemberModel{}).
		Where("member_code = ?", code).Updates(fields).Error
}

func (r *MemberRepository) SetFlag(ctx context.Context, code int64, active bool) error {
	return database.Conn(ctx, r.db).Model(&model.MemberModel{}).
		Where("member_code = ?", code).Update("member_flag", active).Error
}

func (r *MemberRepository) UpdatePassword(ctx context.Context, code int64, hashed string) error {
	return database.Conn(ctx, r.db).Model(&model.MemberModel{}).
		Where("member_code = ?", code).Update("member_password", hashed).Error
}
