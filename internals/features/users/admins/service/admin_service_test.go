package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/admins/dto"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/testutil"
)

func TestAdminSignupAndEdit(t *testing.T) {
	svc := NewAdminService(testutil.NewTestDB(t))
	ctx := context.Background()

	req := dto.AdminSignupRequest{AdminEmail: "Root@LearnsMate.io", AdminPassword: "password123", AdminName: "root"}
	req.Normalize()
	resp, err := svc.Signup(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "root@learnsmate.io", resp.AdminEmail)
	assert.True(t, resp.AdminFlag)

	_, err = svc.Signup(ctx, req)
	assert.True(t, exceptions.Is(err, exceptions.DuplicateEmail))

	dept := "operations"
	edited, err := svc.Edit(ctx, resp.AdminCode, dto.EditAdminRequest{AdminDepartment: &dept})
	require.NoError(t, err)
	assert.Equal(t, "operations", edited.AdminDepartment)

	rows, total, err := svc.List(ctx, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, rows, 1)
}

func TestAdminNotFound(t *testing.T) {
	svc := NewAdminService(testutil.NewTestDB(t))

	_, err := svc.GetAdmin(context.Background(), 77)
	assert.True(t, exceptions.Is(err, exceptions.AdminNotFound))
}
