package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/members/dto"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/testutil"
)

func registerReq(email, memberType string) dto.RegisterMemberRequest {
	req := dto.RegisterMemberRequest{
		MemberType:     memberType,
		MemberEmail:    email,
		MemberPassword: "password123",
		MemberName:     "name",
	}
	req.Normalize()
	return req
}

func TestRegisterAndFind(t *testing.T) {
	svc := NewMemberService(testutil.NewTestDB(t))
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq(" Student@LearnsMate.io ", "student"))
	require.NoError(t, err)
	assert.Equal(t, "student@learnsmate.io", resp.MemberEmail)
	assert.True(t, resp.MemberFlag)

	m, err := svc.FindStudentByCode(ctx, resp.MemberCode)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", m.MemberPassword)

	_, err = svc.FindTutorByCode(ctx, resp.MemberCode)
	assert.True(t, exceptions.Is(err, exceptions.TutorNotFound))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewMemberService(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("dup@learnsmate.io", "STUDENT"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerReq("dup@learnsmate.io", "TUTOR"))
	assert.True(t, exceptions.Is(err, exceptions.DuplicateEmail))
}

func TestFindStudentMissing(t *testing.T) {
	svc := NewMemberService(testutil.NewTestDB(t))

	_, err := svc.FindStudentByCode(context.Background(), 999)
	assert.True(t, exceptions.Is(err, exceptions.StudentNotFound))
}

func TestListStudentsOnlyStudents(t *testing.T) {
	svc := NewMemberService(testutil.NewTestDB(t))
	ctx := context.Background()
	for _, e := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		_, err := svc.Register(ctx, registerReq(e, "STUDENT"))
		require.NoError(t, err)
	}
	_, err := svc.Register(ctx, registerReq("t@x.io", "TUTOR"))
	require.NoError(t, err)

	rows, total, err := svc.ListStudents(ctx, helper.NewPaging(1, 2, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 2)

	tutors, total, err := svc.ListTutors(ctx, helper.NewPaging(1, 20, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "t@x.io", tutors[0].MemberEmail)
}

func TestEditAndDeactivate(t *testing.T) {
	svc := NewMemberService(testutil.NewTestDB(t))
	ctx := context.Background()
	resp, err := svc.Register(ctx, registerReq("e@x.io", "STUDENT"))
	require.NoError(t, err)

	name, birth := "renamed", "2000-01-31"
	edited, err := svc.Edit(ctx, resp.MemberCode, dto.EditMemberRequest{MemberName: &name, MemberBirth: &birth})
	require.NoError(t, err)
	assert.Equal(t, "renamed", edited.MemberName)
	require.NotNil(t, edited.MemberBirth)
	assert.Equal(t, "2000-01-31", *edited.MemberBirth)

	require.NoError(t, svc.Deactivate(ctx, resp.MemberCode))
	m, err := svc.FindByCode(ctx, resp.MemberCode)
	require.NoError(t, err)
	assert.False(t, m.MemberFlag)

	assert.True(t, exceptions.Is(svc.Deactivate(ctx, 12345), exceptions.UserNotFound))
}
