package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	couponModel "learnsmate_backend/internals/features/coupons/coupons/model"
	vocModel "learnsmate_backend/internals/features/vocs/model"
	"learnsmate_backend/internals/seeds/admins"
	"learnsmate_backend/internals/seeds/categories"
	"learnsmate_backend/internals/testutil"
)

func TestSeedsAreIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, categories.SeedCategoriesFromJSON(ctx, db, "categories/data_categories.json"))
	}
	var coupons, vocs int64
	require.NoError(t, db.Model(&couponModel.CouponCategoryModel{}).Count(&coupons).Error)
	require.NoError(t, db.Model(&vocModel.VocCategoryModel{}).Count(&vocs).Error)
	assert.Equal(t, int64(3), coupons)
	assert.Equal(t, int64(4), vocs)

	n, err := admins.SeedAdminsFromJSON(ctx, db, "admins/data_admins.json")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = admins.SeedAdminsFromJSON(ctx, db, "admins/data_admins.json")
	require.NoError(t, err)
	assert.Zero(t, n)
}
