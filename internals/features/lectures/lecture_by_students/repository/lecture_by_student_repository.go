package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/model"
)

type LectureByStudentRepository struct {
	db *gorm.DB
}

func NewLectureByStudentRepository(db *gorm.DB) *LectureByStudentRepository {
	return &LectureByStudentRepository{db: db}
}

func (r *LectureByStudentRepository) Create(ctx context.Context, m *model.LectureByStudentModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *LectureByStudentRepository) FindByStudentCode(ctx context.Context, studentCode int64) ([]model.LectureByStudentModel, error) {
	var rows []model.LectureByStudentModel
	err := database.Conn(ctx, r.db).
		Preload("Lecture").
		Where("student_code = ? AND own_status = ?", studentCode, true).
		Order("lecture_by_student_code DESC").
		Find(&rows).Error
	return rows, err
}

func (r *LectureByStudentRepository) Owns(ctx context.Context, lectureCode, studentCode int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.LectureByStudentModel{}).
		Where("lecture_code = ? AND student_code = ? AND own_status = ?", lectureCode, studentCode, true).
		Count(&n).Error
	return n > 0, err
}

func (r *LectureByStudentRepository) Find(ctx context.Context, lectureCode, studentCode int64) (*model.LectureByStudentModel, error) {
	var m model.LectureByStudentModel
	err := database.Conn(ctx, r.db).
		Where("lecture_code = ? AND student_code = ?", lectureCode, studentCode).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LectureByStudentRepository) SetOwnStatus(ctx context.Context, code int64, own bool) error {
	return database.Conn(ctx, r.db).Model(&model.LectureByStudentModel{}).
		Where("lecture_by_student_code = ?", code).
		Update("own_status", own).Error
}
