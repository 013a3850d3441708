package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	memberDto "learnsmate_backend/internals/features/users/members/dto"
	memberService "learnsmate_backend/internals/features/users/members/service"
	"learnsmate_backend/internals/testutil"
)

func seed(t *testing.T) (*gorm.DB, int64, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	student, err := memberService.NewMemberService(db).Register(context.Background(), memberDto.RegisterMemberRequest{
		MemberType: "STUDENT", MemberEmail: "student@learnsmate.io", MemberPassword: "password123", MemberName: "student",
	})
	require.NoError(t, err)

	lecture := lectureModel.LectureModel{LectureTitle: "Go", LectureLevel: lectureModel.LevelBeginner, TutorCode: 1, LectureStatus: true}
	require.NoError(t, db.Create(&lecture).Error)
	return db, student.MemberCode, lecture.LectureCode
}

func TestGrantAndFindByStudent(t *testing.T) {
	db, student, lecture := seed(t)
	svc := NewLectureByStudentService(db)
	ctx := context.Background()

	granted, err := svc.Grant(ctx, lecture, student)
	require.NoError(t, err)
	assert.True(t, granted.OwnStatus)

	_, err = svc.Grant(ctx, lecture, student)
	assert.True(t, exceptions.Is(err, exceptions.AlreadyOwned))

	rows, err := svc.FindByStudentCode(ctx, student)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Go", rows[0].LectureTitle)

	owns, err := svc.Owns(ctx, lecture, student)
	require.NoError(t, err)
	assert.True(t, owns)
}

func TestRevokeThenGrantAgain(t *testing.T) {
	db, student, lecture := seed(t)
	svc := NewLectureByStudentService(db)
	ctx := context.Background()

	_, err := svc.Grant(ctx, lecture, student)
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, lecture, student))

	rows, err := svc.FindByStudentCode(ctx, student)
	require.NoError(t, err)
	assert.Empty(t, rows)

	again, err := svc.Grant(ctx, lecture, student)
	require.NoError(t, err)
	assert.True(t, again.OwnStatus)
}

func TestGrantUnknownLectureOrStudent(t *testing.T) {
	db, student, lecture := seed(t)
	svc := NewLectureByStudentService(db)
	ctx := context.Background()

	_, err := svc.Grant(ctx, 999, student)
	assert.True(t, exceptions.Is(err, exceptions.LectureNotFound))

	_, err = svc.Grant(ctx, lecture, 999)
	assert.True(t, exceptions.Is(err, exceptions.StudentNotFound))

	_, err = svc.FindByStudentCode(ctx, 999)
	assert.True(t, exceptions.Is(err, exceptions.StudentNotFound))
}
