package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/model"
)

type VideoByLectureRepository struct {
	db *gorm.DB
}

func NewVideoByLectureRepository(db *gorm.DB) *VideoByLectureRepository {
	return &VideoByLectureRepository{db: db}
}

func (r *VideoByLectureRepository) Create(ctx context.Context, m *model.VideoByLectureModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *VideoByLectureRepository) FindByCode(ctx context.Context, code int64) (*model.VideoByLectureModel, error) {
	var m model.VideoByLectureModel
	if err := database.Conn(ctx, r.db).Where("video_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *VideoByLectureRepository) ListByLecture(ctx context.Context, lectureCode int64) ([]model.VideoByLectureModel, error) {
	var rows []model.VideoByLectureModel
	err := database.Conn(ctx, r.db).Where("lecture_code = ?", lectureCode).
		Order("video_code ASC").Find(&rows).Error
	return rows, err
}

func (r *VideoByLectureRepository) CountByLectureCode(ctx context.Context, lectureCode int64) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.VideoByLectureModel{}).
		Where("lecture_code = ?", lectureCode).Count(&n).Error
	return n, err
}

func (r *VideoByLectureRepository) Delete(ctx context.Context, code int64) (int64, error) {
	res := database.Conn(ctx, r.db).Where("video_code = ?", code).Delete(&model.VideoByLectureModel{})
	return res.RowsAffected, res.Error
}
