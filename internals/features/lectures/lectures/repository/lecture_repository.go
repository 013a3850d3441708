package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/lectures/lectures/model"
	helper "learnsmate_backend/internals/helpers"
)

type LectureFilter struct {
	Title         string
	Status        *bool
	ConfirmStatus *bool
	TutorCode     *int64
	Level         string
}

type LectureRepository struct {
	db *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{db: db}
}

func (r *LectureRepository) Create(ctx context.Context, m *model.LectureModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *LectureRepository) FindByCode(ctx context.Context, code int64) (*model.LectureModel, error) {
	var m model.LectureModel
	if err := database.Conn(ctx, r.db).Where("lecture_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LectureRepository) Exists(ctx context.Context, code int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.LectureModel{}).
		Where("lecture_code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *LectureRepository) List(ctx context.Context, f LectureFilter, p helper.Paging) ([]model.LectureModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.LectureModel{})
	if f.Title != "" {
		q = q.Where("LOWER(lecture_title) LIKE ?", "%"+helper.LowerLike(f.Title)+"%")
	}
	if f.Status != nil {
		q = q.Where("lecture_status = ?", *f.Status)
	}
	if f.ConfirmStatus != nil {
		q = q.Where("lecture_confirm_status = ?", *f.ConfirmStatus)
	}
	if f.TutorCode != nil {
		q = q.Where("tutor_code = ?", *f.TutorCode)
	}
	if f.Level != "" {
		q = q.Where("lecture_level = ?", f.Level)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.LectureModel
	err := q.Order("lecture_code DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

func (r *LectureRepository) Updates(ctx context.Context, code int64, fields map[string]any) error {
	return database.Conn(ctx, r.db).Model(&model.LectureModel{}).
		Where("lecture_code = ?", code).Updates(fields).Error
}

// IncrementClickCount bumps the counter in SQL so concurrent views are not lost.
func (r *LectureRepository) IncrementClickCount(ctx context.Context, code int64) error {
	return database.Conn(ctx, r.db).Model(&model.LectureModel{}).
		Where("lecture_code = ?", code).
		UpdateColumn("lecture_click_count", gorm.Expr("lecture_click_count + 1")).Error
}
