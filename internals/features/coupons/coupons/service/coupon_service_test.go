package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/coupons/coupons/dto"
	"learnsmate_backend/internals/features/coupons/coupons/model"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/testutil"
)

func newService(t *testing.T) (*CouponService, *gorm.DB, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewCouponService(db)
	cat, err := svc.RegisterCategory(context.Background(), dto.CouponCategoryRequest{CouponCategoryName: "GENERAL"})
	require.NoError(t, err)
	return svc, db, cat.CouponCategoryCode
}

func adminCoupon(category int64) dto.AdminCouponRegisterRequest {
	now := time.Now()
	return dto.AdminCouponRegisterRequest{
		CouponName:         "Welcome 10",
		CouponDiscountRate: 10,
		CouponStartDate:    now.Add(-time.Hour),
		CouponExpireDate:   now.Add(24 * time.Hour),
		CouponCategoryCode: category,
	}
}

func TestRegisterCategoryDuplicate(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.RegisterCategory(context.Background(), dto.CouponCategoryRequest{CouponCategoryName: "GENERAL"})
	assert.True(t, exceptions.Is(err, exceptions.DuplicateCategory))

	rows, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRegisterAdminCouponAndFind(t *testing.T) {
	svc, _, category := newService(t)
	ctx := context.Background()

	resp, err := svc.RegisterAdminCoupon(ctx, 1, adminCoupon(category))
	require.NoError(t, err)
	assert.True(t, resp.Active)
	require.NotNil(t, resp.AdminCode)
	assert.Equal(t, int64(1), *resp.AdminCode)

	found, err := svc.FindByCode(ctx, resp.CouponCode)
	require.NoError(t, err)
	assert.Equal(t, "Welcome 10", found.CouponName)

	_, err = svc.FindByCode(ctx, 999)
	assert.True(t, exceptions.Is(err, exceptions.CouponNotFound))

	bad := adminCoupon(category + 50)
	_, err = svc.RegisterAdminCoupon(ctx, 1, bad)
	assert.True(t, exceptions.Is(err, exceptions.CategoryNotFound))
}

func TestRegisterTutorCoupon(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()

	own := lectureModel.LectureModel{LectureTitle: "Go", LecturePrice: 10000, LectureLevel: lectureModel.LevelBeginner, TutorCode: 7}
	other := lectureModel.LectureModel{LectureTitle: "Rust", LecturePrice: 10000, LectureLevel: lectureModel.LevelBeginner, TutorCode: 8}
	require.NoError(t, db.Create(&own).Error)
	require.NoError(t, db.Create(&other).Error)

	req := dto.TutorCouponRegisterRequest{
		CouponName:         "Tutor 20",
		CouponDiscountRate: 20,
		CouponExpireDate:   time.Now().Add(48 * time.Hour),
		TargetLectureCodes: []int64{own.LectureCode},
	}
	resp, err := svc.RegisterTutorCoupon(ctx, 7, req)
	require.NoError(t, err)
	require.NotNil(t, resp.TutorCode)
	assert.Equal(t, []int64{own.LectureCode}, resp.TargetLectureCodes)

	req.TargetLectureCodes = []int64{other.LectureCode}
	_, err = svc.RegisterTutorCoupon(ctx, 7, req)
	assert.True(t, exceptions.Is(err, exceptions.Forbidden))

	req.TargetLectureCodes = nil
	req.CouponExpireDate = time.Now().Add(-time.Hour)
	_, err = svc.RegisterTutorCoupon(ctx, 7, req)
	assert.True(t, exceptions.Is(err, exceptions.InvalidParameter))
}

func TestToggleDeactivateAndOwnership(t *testing.T) {
	svc, _, category := newService(t)
	ctx := context.Background()

	resp, err := svc.RegisterTutorCoupon(ctx, 7, dto.TutorCouponRegisterRequest{
		CouponName: "Tutor", CouponDiscountRate: 5, CouponExpireDate: time.Now().Add(time.Hour), CouponCategoryCode: &category,
	})
	require.NoError(t, err)

	stranger := int64(8)
	_, err = svc.ToggleActive(ctx, resp.CouponCode, &stranger)
	assert.True(t, exceptions.Is(err, exceptions.Forbidden))

	owner := int64(7)
	toggled, err := svc.ToggleActive(ctx, resp.CouponCode, &owner)
	require.NoError(t, err)
	assert.False(t, toggled.ActiveState)
	assert.False(t, toggled.Active)

	require.NoError(t, svc.Deactivate(ctx, resp.CouponCode, nil))
	found, err := svc.FindByCode(ctx, resp.CouponCode)
	require.NoError(t, err)
	assert.False(t, found.CouponFlag)
}

func TestEditRejectsInvertedPeriod(t *testing.T) {
	svc, _, category := newService(t)
	ctx := context.Background()

	resp, err := svc.RegisterAdminCoupon(ctx, 1, adminCoupon(category))
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	_, err = svc.Edit(ctx, resp.CouponCode, dto.EditCouponRequest{CouponExpireDate: &past}, nil)
	assert.True(t, exceptions.Is(err, exceptions.InvalidParameter))

	rate := 30
	name := "Welcome 30"
	edited, err := svc.Edit(ctx, resp.CouponCode, dto.EditCouponRequest{CouponDiscountRate: &rate, CouponName: &name}, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, edited.CouponDiscountRate)
	assert.Equal(t, "Welcome 30", edited.CouponName)
}

func TestFilter(t *testing.T) {
	svc, _, category := newService(t)
	ctx := context.Background()

	for _, rate := range []int{10, 50, 90} {
		req := adminCoupon(category)
		req.CouponDiscountRate = rate
		_, err := svc.RegisterAdminCoupon(ctx, 1, req)
		require.NoError(t, err)
	}

	minRate, maxRate := 20, 90
	rows, total, err := svc.Filter(ctx, dto.CouponFilterRequest{MinDiscountRate: &minRate, MaxDiscountRate: &maxRate}, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	name := "WELCOME"
	_, total, err = svc.Filter(ctx, dto.CouponFilterRequest{CouponName: &name}, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = svc.Filter(ctx, dto.CouponFilterRequest{MinDiscountRate: &maxRate, MaxDiscountRate: &minRate}, helper.NewPaging(1, 10, 20, 100))
	assert.True(t, exceptions.Is(err, exceptions.InvalidParameter))
}

func TestAppliesTo(t *testing.T) {
	open := &model.CouponModel{}
	assert.True(t, AppliesTo(open, 42))

	scoped := &model.CouponModel{TargetLectureCodes: dto.EncodeLectureCodes([]int64{1, 2})}
	assert.True(t, AppliesTo(scoped, 2))
	assert.False(t, AppliesTo(scoped, 3))
}
