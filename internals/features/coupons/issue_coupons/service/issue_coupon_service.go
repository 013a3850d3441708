package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/exceptions"
	couponModel "learnsmate_backend/internals/features/coupons/coupons/model"
	couponService "learnsmate_backend/internals/features/coupons/coupons/service"
	"learnsmate_backend/internals/features/coupons/issue_coupons/dto"
	"learnsmate_backend/internals/features/coupons/issue_coupons/model"
	"learnsmate_backend/internals/features/coupons/issue_coupons/repository"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type IssueCouponService struct {
	db      *gorm.DB
	repo    *repository.IssueCouponRepository
	members *memberService.MemberService
	coupons *couponService.CouponService
	now     func() time.Time
}

func NewIssueCouponService(db *gorm.DB) *IssueCouponService {
	return &IssueCouponService{
		db:      db,
		repo:    repository.NewIssueCouponRepository(db),
		members: memberService.NewMemberService(db),
		coupons: couponService.NewCouponService(db),
		now:     time.Now,
	}
}

// IssueCoupons gives every listed coupon to every listed student, student by
// student. Any missing student or coupon rolls the whole batch back.
func (s *IssueCouponService) IssueCoupons(ctx context.Context, req dto.IssueCouponRegisterRequest) ([]dto.IssueCouponResponse, error) {
	now := s.now()
	issued := make([]dto.IssueCouponResponse, 0, len(req.StudentCodes)*len(req.CouponCodes))
	cache := make(map[int64]*couponModel.CouponModel, len(req.CouponCodes))

	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		for _, studentCode := range req.StudentCodes {
			student, err := s.members.FindStudentByCode(ctx, studentCode)
			if err != nil {
				return err
			}
			for _, couponCode := range req.CouponCodes {
				coupon, ok := cache[couponCode]
				if !ok {
					if coupon, err = s.coupons.FindByCode(ctx, couponCode); err != nil {
						return err
					}
					cache[couponCode] = coupon
				}
				m := &model.IssueCouponModel{
					CouponIssuanceCode: uuid.NewString(),
					CouponIssueDate:    now,
					CouponCode:         coupon.CouponCode,
					StudentCode:        student.MemberCode,
				}
				if err := s.repo.Create(ctx, m); err != nil {
					return pkgErrors.Wrap(err, "create issue coupon")
				}
				issued = append(issued, dto.ToIssueCouponResponse(m, now))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	couponsIssued.Add(float64(len(issued)))
	logger.Log.WithField("count", len(issued)).Info("coupons issued")
	return issued, nil
}

// FindIssuedCouponsByStudent lists a student's unused coupons that can be redeemed now.
func (s *IssueCouponService) FindIssuedCouponsByStudent(ctx context.Context, studentCode int64) ([]dto.IssueCouponResponse, error) {
	now := s.now()
	rows, err := s.repo.FindActiveUnusedByStudent(ctx, studentCode, now)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "find issued coupons")
	}
	return dto.ToIssueCouponResponses(rows, now), nil
}

// UseIssuedCoupon marks the student's unused issuance as used.
// Missing, foreign or already used issuances are CouponNotFound.
func (s *IssueCouponService) UseIssuedCoupon(ctx context.Context, studentCode int64, issuanceCode string) (*dto.IssueCouponResponse, error) {
	var resp dto.IssueCouponResponse
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		m, err := s.findUnused(ctx, studentCode, issuanceCode)
		if err != nil {
			return err
		}
		if err := s.markUsed(ctx, m); err != nil {
			return err
		}
		resp = dto.ToIssueCouponResponse(m, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	couponsUsed.Inc()
	return &resp, nil
}

// Redeem uses an issuance toward lectureCode and returns it with its coupon.
// It must run inside the caller's transaction.
func (s *IssueCouponService) Redeem(ctx context.Context, studentCode int64, issuanceCode string, lectureCode int64) (*model.IssueCouponModel, error) {
	var out *model.IssueCouponModel
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		m, err := s.findUnused(ctx, studentCode, issuanceCode)
		if err != nil {
			return err
		}
		coupon, err := s.coupons.FindByCode(ctx, m.CouponCode)
		if err != nil {
			return err
		}
		if !coupon.IsActive(s.now()) || !couponService.AppliesTo(coupon, lectureCode) {
			return exceptions.New(exceptions.CouponNotApplicable)
		}
		if err := s.markUsed(ctx, m); err != nil {
			return err
		}
		m.Coupon = coupon
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	couponsUsed.Inc()
	return out, nil
}

// Release gives back an issuance redeemed for a checkout that never reached
// the payment gateway.
func (s *IssueCouponService) Release(ctx context.Context, issuanceCode string) error {
	ok, err := s.repo.MarkUnused(ctx, issuanceCode)
	if err != nil {
		return pkgErrors.Wrap(err, "release coupon")
	}
	if !ok {
		return exceptions.New(exceptions.CouponNotFound)
	}
	return nil
}

func (s *IssueCouponService) findUnused(ctx context.Context, studentCode int64, issuanceCode string) (*model.IssueCouponModel, error) {
	if _, err := uuid.Parse(issuanceCode); err != nil {
		return nil, exceptions.New(exceptions.CouponNotFound)
	}
	m, err := s.repo.FindUnusedForUpdate(ctx, issuanceCode, studentCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.CouponNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find issue coupon")
	}
	return m, nil
}

func (s *IssueCouponService) markUsed(ctx context.Context, m *model.IssueCouponModel) error {
	now := s.now()
	ok, err := s.repo.MarkUsed(ctx, m.CouponIssuanceCode, now)
	if err != nil {
		return pkgErrors.Wrap(err, "mark coupon used")
	}
	if !ok {
		return exceptions.New(exceptions.CouponNotFound)
	}
	m.CouponUseStatus = true
	m.CouponUseDate = &now
	return nil
}

func (s *IssueCouponService) List(ctx context.Context, p helper.Paging) ([]dto.IssueCouponResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list issue coupons")
	}
	return dto.ToIssueCouponResponses(rows, s.now()), total, nil
}
