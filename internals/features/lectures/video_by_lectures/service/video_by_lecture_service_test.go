package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/dto"
	"learnsmate_backend/internals/testutil"
)

func TestVideoLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewVideoByLectureService(db)
	ctx := context.Background()

	lecture := lectureModel.LectureModel{LectureTitle: "Go", LectureLevel: lectureModel.LevelBeginner, TutorCode: 5}
	require.NoError(t, db.Create(&lecture).Error)

	tutor := int64(5)
	v, err := svc.Register(ctx, lecture.LectureCode, dto.RegisterVideoRequest{VideoTitle: "intro", VideoLink: "https://videos.learnsmate.io/1"}, &tutor)
	require.NoError(t, err)
	_, err = svc.Register(ctx, lecture.LectureCode, dto.RegisterVideoRequest{VideoTitle: "setup", VideoLink: "https://videos.learnsmate.io/2"}, nil)
	require.NoError(t, err)

	n, err := svc.CountByLectureCode(ctx, lecture.LectureCode)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stranger := int64(6)
	assert.True(t, exceptions.Is(svc.Delete(ctx, v.VideoCode, &stranger), exceptions.Forbidden))
	require.NoError(t, svc.Delete(ctx, v.VideoCode, &tutor))
	assert.True(t, exceptions.Is(svc.Delete(ctx, v.VideoCode, nil), exceptions.VideoNotFound))

	rows, err := svc.ListByLecture(ctx, lecture.LectureCode)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "setup", rows[0].VideoTitle)
}

func TestRegisterVideoUnknownLecture(t *testing.T) {
	svc := NewVideoByLectureService(testutil.NewTestDB(t))

	_, err := svc.Register(context.Background(), 404, dto.RegisterVideoRequest{VideoTitle: "x", VideoLink: "https://v/x"}, nil)
	assert.True(t, exceptions.Is(err, exceptions.LectureNotFound))
}

func TestRegisterVideoRejectsNonVideoLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewVideoByLectureService(db)
	lecture := lectureModel.LectureModel{LectureTitle: "Go", LectureLevel: lectureModel.LevelBeginner, TutorCode: 5}
	require.NoError(t, db.Create(&lecture).Error)

	_, err := svc.Register(context.Background(), lecture.LectureCode, dto.RegisterVideoRequest{VideoTitle: "slides", VideoLink: "https://cdn.learnsmate.io/slides.pdf"}, nil)
	assert.True(t, exceptions.Is(err, exceptions.InvalidParameter))

	_, err = svc.Register(context.Background(), lecture.LectureCode, dto.RegisterVideoRequest{VideoTitle: "clip", VideoLink: "https://cdn.learnsmate.io/clip.mp4?t=1"}, nil)
	require.NoError(t, err)
}
