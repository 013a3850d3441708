package service

import (
	"context"
	"errors"
	"slices"
	"time"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/coupons/coupons/dto"
	"learnsmate_backend/internals/features/coupons/coupons/model"
	"learnsmate_backend/internals/features/coupons/coupons/repository"
	helper "learnsmate_backend/internals/helpers"
)

type CouponService struct {
	repo *repository.CouponRepository
	now  func() time.Time
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{repo: repository.NewCouponRepository(db), now: time.Now}
}

/* ===== categories ===== */

func (s *CouponService) ListCategories(ctx context.Context) ([]dto.CouponCategoryResponse, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list coupon categories")
	}
	return dto.ToCouponCategoryResponses(rows), nil
}

func (s *CouponService) RegisterCategory(ctx context.Context, req dto.CouponCategoryRequest) (*dto.CouponCategoryResponse, error) {
	m := &model.CouponCategoryModel{CouponCategoryName: req.CouponCategoryName}
	if err := s.repo.CreateCategory(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.DuplicateCategory)
		}
		return nil, pkgErrors.Wrap(err, "create coupon category")
	}
	return &dto.CouponCategoryResponse{CouponCategoryCode: m.CouponCategoryCode, CouponCategoryName: m.CouponCategoryName}, nil
}

func (s *CouponService) ensureCategory(ctx context.Context, code int64) error {
	ok, err := s.repo.CategoryExists(ctx, code)
	if err != nil {
		return pkgErrors.Wrap(err, "check coupon category")
	}
	if !ok {
		return exceptions.New(exceptions.CategoryNotFound)
	}
	return nil
}

/* ===== register ===== */

func (s *CouponService) RegisterAdminCoupon(ctx context.Context, adminCode int64, req dto.AdminCouponRegisterRequest) (*dto.CouponResponse, error) {
	if err := s.ensureCategory(ctx, req.CouponCategoryCode); err != nil {
		return nil, err
	}
	m := req.ToModel(adminCode)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, pkgErrors.Wrap(err, "create coupon")
	}
	resp := dto.ToCouponResponse(m, s.now())
	return &resp, nil
}

// RegisterTutorCoupon creates a coupon owned by tutorCode. Target lectures
// must all belong to the tutor.
func (s *CouponService) RegisterTutorCoupon(ctx context.Context, tutorCode int64, req dto.TutorCouponRegisterRequest) (*dto.CouponResponse, error) {
	now := s.now()
	if !req.CouponExpireDate.After(now) {
		return nil, exceptions.WithDetail(exceptions.InvalidParameter, "coupon_expire_date must be in the future")
	}

	var categoryCode int64
	if req.CouponCategoryCode != nil {
		if err := s.ensureCategory(ctx, *req.CouponCategoryCode); err != nil {
			return nil, err
		}
		categoryCode = *req.CouponCategoryCode
	} else {
		first, err := s.repo.FirstCategory(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, exceptions.New(exceptions.CategoryNotFound)
			}
			return nil, pkgErrors.Wrap(err, "default coupon category")
		}
		categoryCode = first.CouponCategoryCode
	}

	if err := s.ensureTutorLectures(ctx, tutorCode, req.TargetLectureCodes); err != nil {
		return nil, err
	}

	m := req.ToModel(tutorCode, categoryCode, now)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, pkgErrors.Wrap(err, "create coupon")
	}
	resp := dto.ToCouponResponse(m, now)
	return &resp, nil
}

func (s *CouponService) ensureTutorLectures(ctx context.Context, tutorCode int64, codes []int64) error {
	if len(codes) == 0 {
		return nil
	}
	uniq := slices.Compact(slices.Sorted(slices.Values(codes)))
	n, err := s.repo.CountTutorLectures(ctx, tutorCode, uniq)
	if err != nil {
		return pkgErrors.Wrap(err, "check tutor lectures")
	}
	if n != int64(len(uniq)) {
		return exceptions.WithDetail(exceptions.Forbidden, "target lectures must belong to the tutor")
	}
	return nil
}

/* ===== read ===== */

// FindByCode returns the coupon entity; CouponNotFound when absent.
func (s *CouponService) FindByCode(ctx context.Context, code int64) (*model.CouponModel, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.CouponNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find coupon")
	}
	return m, nil
}

func (s *CouponService) GetCoupon(ctx context.Context, code int64) (*dto.CouponResponse, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCouponResponse(m, s.now())
	return &resp, nil
}

func (s *CouponService) List(ctx context.Context, p helper.Paging) ([]dto.CouponResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list coupons")
	}
	return dto.ToCouponResponses(rows, s.now()), total, nil
}

func (s *CouponService) Filter(ctx context.Context, f dto.CouponFilterRequest, p helper.Paging) ([]dto.CouponResponse, int64, error) {
	if f.MinDiscountRate != nil && f.MaxDiscountRate != nil && *f.MinDiscountRate > *f.MaxDiscountRate {
		return nil, 0, exceptions.WithDetail(exceptions.InvalidParameter, "min_discount_rate exceeds max_discount_rate")
	}
	rows, total, err := s.repo.Filter(ctx, f, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "filter coupons")
	}
	return dto.ToCouponResponses(rows, s.now()), total, nil
}

/* ===== write ===== */

// Edit applies partial changes. A non-nil tutorCode restricts the edit to
// that tutor's own coupons.
func (s *CouponService) Edit(ctx context.Context, code int64, req dto.EditCouponRequest, tutorCode *int64) (*dto.CouponResponse, error) {
	m, err := s.owned(ctx, code, tutorCode)
	if err != nil {
		return nil, err
	}
	if req.CouponCategoryCode != nil {
		if err := s.ensureCategory(ctx, *req.CouponCategoryCode); err != nil {
			return nil, err
		}
	}
	if tutorCode != nil && req.TargetLectureCodes != nil {
		if err := s.ensureTutorLectures(ctx, *tutorCode, *req.TargetLectureCodes); err != nil {
			return nil, err
		}
	}

	start, expire := m.CouponStartDate, m.CouponExpireDate
	if req.CouponStartDate != nil {
		start = *req.CouponStartDate
	}
	if req.CouponExpireDate != nil {
		expire = *req.CouponExpireDate
	}
	if !expire.After(start) {
		return nil, exceptions.WithDetail(exceptions.InvalidParameter, "coupon_expire_date must be after coupon_start_date")
	}

	if up := req.ToUpdates(); len(up) > 0 {
		if err := s.repo.Updates(ctx, code, up); err != nil {
			return nil, pkgErrors.Wrap(err, "update coupon")
		}
	}
	return s.GetCoupon(ctx, code)
}

// Deactivate soft-deletes the coupon by clearing its flag.
func (s *CouponService) Deactivate(ctx context.Context, code int64, tutorCode *int64) error {
	if _, err := s.owned(ctx, code, tutorCode); err != nil {
		return err
	}
	return pkgErrors.Wrap(s.repo.Updates(ctx, code, map[string]any{"coupon_flag": false}), "deactivate coupon")
}

// ToggleActive flips active_state and returns the new state.
func (s *CouponService) ToggleActive(ctx context.Context, code int64, tutorCode *int64) (*dto.CouponResponse, error) {
	m, err := s.owned(ctx, code, tutorCode)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Updates(ctx, code, map[string]any{"active_state": !m.ActiveState}); err != nil {
		return nil, pkgErrors.Wrap(err, "toggle coupon")
	}
	return s.GetCoupon(ctx, code)
}

func (s *CouponService) owned(ctx context.Context, code int64, tutorCode *int64) (*model.CouponModel, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tutorCode != nil && (m.TutorCode == nil || *m.TutorCode != *tutorCode) {
		return nil, exceptions.WithDetail(exceptions.Forbidden, "coupon belongs to another owner")
	}
	return m, nil
}

// AppliesTo reports whether coupon m can discount lectureCode.
func AppliesTo(m *model.CouponModel, lectureCode int64) bool {
	targets := dto.DecodeLectureCodes(m.TargetLectureCodes)
	return len(targets) == 0 || slices.Contains(targets, lectureCode)
}
