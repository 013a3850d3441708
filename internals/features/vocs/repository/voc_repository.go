package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/vocs/dto"
	"learnsmate_backend/internals/features/vocs/model"
	helper "learnsmate_backend/internals/helpers"
)

type VocRepository struct {
	db *gorm.DB
}

func NewVocRepository(db *gorm.DB) *VocRepository {
	return &VocRepository{db: db}
}

/* ===================== categories ===================== */

func (r *VocRepository) CreateCategory(ctx context.Context, m *model.VocCategoryModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *VocRepository) ListCategories(ctx context.Context) ([]model.VocCategoryModel, error) {
	var rows []model.VocCategoryModel
	err := database.Conn(ctx, r.db).Order("voc_category_code ASC").Find(&rows).Error
	return rows, err
}

func (r *VocRepository) CategoryExists(ctx context.Context, code int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.VocCategoryModel{}).
		Where("voc_category_code = ?", code).Count(&n).Error
	return n > 0, err
}

// CountByCategory counts tickets per category, including empty categories.
func (r *VocRepository) CountByCategory(ctx context.Context) ([]dto.VocCountByCategory, error) {
	var rows []dto.VocCountByCategory
	err := database.Conn(ctx, r.db).Model(&model.VocCategoryModel{}).
		Select("voc_category.voc_category_code, voc_category.voc_category_name, COUNT(voc.voc_code) AS count").
		Joins("LEFT JOIN voc ON voc.voc_category_code = voc_category.voc_category_code").
		Group("voc_category.voc_category_code, voc_category.voc_category_name").
		Order("voc_category.voc_category_code ASC").
		Scan(&rows).Error
	return rows, err
}

/* ===================== tickets ===================== */

func (r *VocRepository) Create(ctx context.Context, m *model.VocModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *VocRepository) FindByCode(ctx context.Context, code string) (*model.VocModel, error) {
	var m model.VocModel
	if err := database.Conn(ctx, r.db).Preload("Answer").
		Where("voc_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *VocRepository) List(ctx context.Context, p helper.Paging) ([]model.VocModel, int64, error) {
	return r.page(database.Conn(ctx, r.db).Model(&model.VocModel{}), p)
}

func (r *VocRepository) Filter(ctx context.Context, f dto.VocFilterRequest, p helper.Paging) ([]model.VocModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.VocModel{})
	if f.VocCategoryCode != nil {
		q = q.Where("voc.voc_category_code = ?", *f.VocCategoryCode)
	}
	if f.VocAnswerStatus != nil {
		q = q.Where("voc.voc_answer_status = ?", *f.VocAnswerStatus)
	}
	if f.MemberType != nil {
		q = q.Joins("JOIN member ON member.member_code = voc.member_code").
			Where("member.member_type = ?", *f.MemberType)
	}
	if f.StartDate != nil {
		q = q.Where("voc.created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("voc.created_at <= ?", *f.EndDate)
	}
	if f.Keyword != nil {
		if kw := helper.LowerLike(*f.Keyword); kw != "" {
			q = q.Where("LOWER(voc.voc_content) LIKE ?", "%"+kw+"%")
		}
	}
	return r.page(q, p)
}

func (r *VocRepository) page(q *gorm.DB, p helper.Paging) ([]model.VocModel, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.VocModel
	err := q.Preload("Answer").
		Order("voc.created_at DESC, voc.voc_code DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	return rows, total, err
}

// MarkAnswered flips the answer status once. It reports false when the
// ticket was already answered.
func (r *VocRepository) MarkAnswered(ctx context.Context, code string) (bool, error) {
	res := database.Conn(ctx, r.db).Model(&model.VocModel{}).
		Where("voc_code = ? AND voc_answer_status = ?", code, false).
		Update("voc_answer_status", true)
	return res.RowsAffected == 1, res.Error
}

func (r *VocRepository) CreateAnswer(ctx context.Context, m *model.VocAnswerModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *VocRepository) SetSatisfaction(ctx context.Context, code, satisfaction string) error {
	return database.Conn(ctx, r.db).Model(&model.VocModel{}).
		Where("voc_code = ?", code).
		Update("voc_answer_satisfaction", satisfaction).Error
}
