package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/lectures/lecture_categories/dto"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	"learnsmate_backend/internals/testutil"
)

func TestAttachIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLectureCategoryService(db)
	ctx := context.Background()

	lecture := lectureModel.LectureModel{LectureTitle: "Go", LectureLevel: lectureModel.LevelBeginner, TutorCode: 1}
	require.NoError(t, db.Create(&lecture).Error)

	backend, err := svc.Register(ctx, dto.LectureCategoryRequest{LectureCategoryName: "Backend"})
	require.NoError(t, err)
	cloud, err := svc.Register(ctx, dto.LectureCategoryRequest{LectureCategoryName: "Cloud"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.LectureCategoryRequest{LectureCategoryName: "Cloud"})
	assert.True(t, exceptions.Is(err, exceptions.DuplicateCategory))

	codes := []int64{backend.LectureCategoryCode, cloud.LectureCategoryCode}
	_, err = svc.Attach(ctx, lecture.LectureCode, dto.AttachCategoriesRequest{LectureCategoryCodes: codes})
	require.NoError(t, err)
	rows, err := svc.Attach(ctx, lecture.LectureCode, dto.AttachCategoriesRequest{LectureCategoryCodes: codes})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, svc.Detach(ctx, lecture.LectureCode, cloud.LectureCategoryCode))
	assert.True(t, exceptions.Is(svc.Detach(ctx, lecture.LectureCode, cloud.LectureCategoryCode), exceptions.CategoryNotFound))

	rows, err = svc.ListByLecture(ctx, lecture.LectureCode)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Backend", rows[0].LectureCategoryName)
}

func TestAttachUnknownLectureOrCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLectureCategoryService(db)
	ctx := context.Background()

	_, err := svc.Attach(ctx, 99, dto.AttachCategoriesRequest{LectureCategoryCodes: []int64{1}})
	assert.True(t, exceptions.Is(err, exceptions.LectureNotFound))

	lecture := lectureModel.LectureModel{LectureTitle: "Go", LectureLevel: lectureModel.LevelBeginner, TutorCode: 1}
	require.NoError(t, db.Create(&lecture).Error)
	_, err = svc.Attach(ctx, lecture.LectureCode, dto.AttachCategoriesRequest{LectureCategoryCodes: []int64{42}})
	assert.True(t, exceptions.Is(err, exceptions.CategoryNotFound))
}
