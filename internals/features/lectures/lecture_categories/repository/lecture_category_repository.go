package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/lectures/lecture_categories/model"
)

type LectureCategoryRepository struct {
	db *gorm.DB
}

func NewLectureCategoryRepository(db *gorm.DB) *LectureCategoryRepository {
	return &LectureCategoryRepository{db: db}
}

func (r *LectureCategoryRepository) Create(ctx context.Context, m *model.LectureCategoryModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *LectureCategoryRepository) List(ctx context.Context) ([]model.LectureCategoryModel, error) {
	var rows []model.LectureCategoryModel
	err := database.Conn(ctx, r.db).Order("lecture_category_code ASC").Find(&rows).Error
	return rows, err
}

func (r *LectureCategoryRepository) CountExisting(ctx context.Context, codes []int64) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.LectureCategoryModel{}).
		Where("lecture_category_code IN ?", codes).Count(&n).Error
	return n, err
}

// Attach links categories to a lecture. Existing pairs are left untouched.
func (r *LectureCategoryRepository) Attach(ctx context.Context, lectureCode int64, categoryCodes []int64) error {
	if len(categoryCodes) == 0 {
		return nil
	}
	rows := make([]model.LectureCategoryByLectureModel, 0, len(categoryCodes))
	for _, c := range categoryCodes {
		rows = append(rows, model.LectureCategoryByLectureModel{LectureCode: lectureCode, LectureCategoryCode: c})
	}
	return database.Conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lecture_code"}, {Name: "lecture_category_code"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *LectureCategoryRepository) Detach(ctx context.Context, lectureCode, categoryCode int64) (int64, error) {
	res := database.Conn(ctx, r.db).
		Where("lecture_code = ? AND lecture_category_code = ?", lectureCode, categoryCode).
		Delete(&model.LectureCategoryByLectureModel{})
	return res.RowsAffected, res.Error
}

func (r *LectureCategoryRepository) ListByLecture(ctx context.Context, lectureCode int64) ([]model.LectureCategoryModel, error) {
	var rows []model.LectureCategoryModel
	err := database.Conn(ctx, r.db).
		Joins("JOIN lecture_category_by_lecture lcl ON lcl.lecture_category_code = lecture_category.lecture_category_code").
		Where("lcl.lecture_code = ?", lectureCode).
		Order("lecture_category.lecture_category_code ASC").
		Find(&rows).Error
	return rows, err
}
