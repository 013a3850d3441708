package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/users/blacklists/model"
	helper "learnsmate_backend/internals/helpers"
)

type BlacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

func (r *BlacklistRepository) Create(ctx context.Context, m *model.BlacklistModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *BlacklistRepository) ExistsByMember(ctx context.Context, memberCode int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.BlacklistModel{}).
		Where("member_code = ?", memberCode).Count(&n).Error
	return n > 0, err
}

func (r *BlacklistRepository) FindByMember(ctx context.Context, memberCode int64) (*model.BlacklistModel, error) {
	var m model.BlacklistModel
	if err := database.Conn(ctx, r.db).Preload("Member").
		Where("member_code = ?", memberCode).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByMemberType pages blacklist rows whose member has the given type.
func (r *BlacklistRepository) ListByMemberType(ctx context.Context, memberType string, p helper.Paging) ([]model.BlacklistModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.BlacklistModel{}).
		Joins("JOIN member ON member.member_code = blacklist.member_code").
		Where("member.member_type = ?", memberType).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.BlacklistModel
	if err := q.Preload("Member").
		Order("blacklist.created_at DESC, blacklist.black_code DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *BlacklistRepository) DeleteByMember(ctx context.Context, memberCode int64) (int64, error) {
	res := database.Conn(ctx, r.db).Where("member_code = ?", memberCode).Delete(&model.BlacklistModel{})
	return res.RowsAffected, res.Error
}
