package categories

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	couponModel "learnsmate_backend/internals/features/coupons/coupons/model"
	lectureCategoryModel "learnsmate_backend/internals/features/lectures/lecture_categories/model"
	vocModel "learnsmate_backend/internals/features/vocs/model"
)

type CategorySeed struct {
	Coupon  []string `json:"coupon"`
	Lecture []string `json:"lecture"`
	Voc     []string `json:"voc"`
}

// SeedCategoriesFromJSON upserts coupon, lecture and voc categories by name.
func SeedCategoriesFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrap(err, "read category seed")
	}
	var in CategorySeed
	if err := sonic.Unmarshal(file, &in); err != nil {
		return errors.Wrap(err, "decode category seed")
	}

	return database.InTx(ctx, db, func(ctx context.Context) error {
		tx := database.Conn(ctx, db)
		for _, name := range in.Coupon {
			m := couponModel.CouponCategoryModel{CouponCategoryName: name}
			if err := tx.Where(&m).FirstOrCreate(&m).Error; err != nil {
				return errors.Wrapf(err, "seed coupon category %s", name)
			}
		}
		for _, name := range in.Lecture {
			m := lectureCategoryModel.LectureCategoryModel{LectureCategoryName: name}
			if err := tx.Where(&m).FirstOrCreate(&m).Error; err != nil {
				return errors.Wrapf(err, "seed lecture category %s", name)
			}
		}
		for _, name := range in.Voc {
			m := vocModel.VocCategoryModel{VocCategoryName: name}
			if err := tx.Where(&m).FirstOrCreate(&m).Error; err != nil {
				return errors.Wrapf(err, "seed voc category %s", name)
			}
		}
		return nil
	})
}
