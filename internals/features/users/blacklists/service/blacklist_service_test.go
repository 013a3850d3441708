package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/blacklists/dto"
	memberDto "learnsmate_backend/internals/features/users/members/dto"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/testutil"
)

func register(t *testing.T, db *gorm.DB, email, memberType string) int64 {
	t.Helper()
	resp, err := memberService.NewMemberService(db).Register(context.Background(), memberDto.RegisterMemberRequest{
		MemberType: memberType, MemberEmail: email, MemberPassword: "password123", MemberName: "name",
	})
	require.NoError(t, err)
	return resp.MemberCode
}

func TestBlacklistDeactivatesAndLiftReactivates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewBlacklistService(db)
	members := memberService.NewMemberService(db)
	ctx := context.Background()
	student := register(t, db, "s@learnsmate.io", "STUDENT")

	resp, err := svc.Register(ctx, 1, dto.RegisterBlacklistRequest{MemberCode: student, BlackReason: " spam "})
	require.NoError(t, err)
	assert.Equal(t, "spam", resp.BlackReason)
	assert.Equal(t, int64(1), resp.AdminCode)

	m, err := members.FindByCode(ctx, student)
	require.NoError(t, err)
	assert.False(t, m.MemberFlag)

	_, err = svc.Register(ctx, 1, dto.RegisterBlacklistRequest{MemberCode: student, BlackReason: "again"})
	assert.True(t, exceptions.Is(err, exceptions.AlreadyBlacklisted))

	found, err := svc.FindByMemberCode(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, resp.BlackCode, found.BlackCode)

	require.NoError(t, svc.Lift(ctx, student))
	m, err = members.FindByCode(ctx, student)
	require.NoError(t, err)
	assert.True(t, m.MemberFlag)

	_, err = svc.FindByMemberCode(ctx, student)
	assert.True(t, exceptions.Is(err, exceptions.BlacklistNotFound))
	assert.True(t, exceptions.Is(svc.Lift(ctx, student), exceptions.BlacklistNotFound))
}

func TestBlacklistUnknownMember(t *testing.T) {
	svc := NewBlacklistService(testutil.NewTestDB(t))

	_, err := svc.Register(context.Background(), 1, dto.RegisterBlacklistRequest{MemberCode: 77, BlackReason: "x"})
	assert.True(t, exceptions.Is(err, exceptions.UserNotFound))
}

func TestBlacklistListsByMemberType(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewBlacklistService(db)
	ctx := context.Background()

	for _, email := range []string{"s1@learnsmate.io", "s2@learnsmate.io"} {
		_, err := svc.Register(ctx, 1, dto.RegisterBlacklistRequest{MemberCode: register(t, db, email, "STUDENT"), BlackReason: "abuse"})
		require.NoError(t, err)
	}
	_, err := svc.Register(ctx, 1, dto.RegisterBlacklistRequest{MemberCode: register(t, db, "t@learnsmate.io", "TUTOR"), BlackReason: "fraud"})
	require.NoError(t, err)

	students, total, err := svc.ListStudents(ctx, helper.NewPaging(1, 1, 10, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, students, 1)

	tutors, total, err := svc.ListTutors(ctx, helper.NewPaging(1, 10, 10, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "t@learnsmate.io", tutors[0].MemberEmail)
}
