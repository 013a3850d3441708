package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/exceptions"
	issueCouponService "learnsmate_backend/internals/features/coupons/issue_coupons/service"
	ownershipService "learnsmate_backend/internals/features/lectures/lecture_by_students/service"
	lectureRepo "learnsmate_backend/internals/features/lectures/lectures/repository"
	"learnsmate_backend/internals/features/payments/dto"
	"learnsmate_backend/internals/features/payments/model"
	"learnsmate_backend/internals/features/payments/repository"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type PaymentService struct {
	db        *gorm.DB
	repo      *repository.PaymentRepository
	lectures  *lectureRepo.LectureRepository
	members   *memberService.MemberService
	coupons   *issueCouponService.IssueCouponService
	ownership *ownershipService.LectureByStudentService
	gateway   Gateway
	serverKey string
	now       func() time.Time
}

// NewPaymentService wires the checkout flow. An empty serverKey disables
// notification signature checks.
func NewPaymentService(db *gorm.DB, gateway Gateway, serverKey string) *PaymentService {
	return &PaymentService{
		db:        db,
		repo:      repository.NewPaymentRepository(db),
		lectures:  lectureRepo.NewLectureRepository(db),
		members:   memberService.NewMemberService(db),
		coupons:   issueCouponService.NewIssueCouponService(db),
		ownership: ownershipService.NewLectureByStudentService(db),
		gateway:   gateway,
		serverKey: serverKey,
		now:       time.Now,
	}
}

// DiscountedPrice applies a percentage discount, rounding down.
func DiscountedPrice(price, rate int) int {
	if rate <= 0 {
		return price
	}
	if rate >= 100 {
		return 0
	}
	return price * (100 - rate) / 100
}

// Create opens a PENDING payment for a lecture. A coupon, when given, is
// redeemed in the same transaction; a fully discounted order is paid at once.
// The gateway token is requested after commit. When that fails the payment
// is removed and its coupon released.
func (s *PaymentService) Create(ctx context.Context, studentCode int64, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	var out *model.PaymentModel
	var checkout *TokenRequest
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		lecture, err := s.lectures.FindByCode(ctx, req.LectureCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.New(exceptions.LectureNotFound)
			}
			return pkgErrors.Wrap(err, "find lecture")
		}
		if !lecture.OnSale() {
			return exceptions.New(exceptions.LectureNotOnSale)
		}
		student, err := s.members.FindStudentByCode(ctx, studentCode)
		if err != nil {
			return err
		}
		owned, err := s.ownership.Owns(ctx, lecture.LectureCode, studentCode)
		if err != nil {
			return err
		}
		if owned {
			return exceptions.New(exceptions.AlreadyOwned)
		}

		price := lecture.LecturePrice
		var issuance *string
		if req.CouponIssuanceCode != nil && *req.CouponIssuanceCode != "" {
			issued, err := s.coupons.Redeem(ctx, studentCode, *req.CouponIssuanceCode, lecture.LectureCode)
			if err != nil {
				return err
			}
			price = DiscountedPrice(price, issued.Coupon.CouponDiscountRate)
			issuance = &issued.CouponIssuanceCode
		}

		m := &model.PaymentModel{
			PaymentCode:        uuid.NewString(),
			PaymentPrice:       price,
			PaymentStatus:      model.StatusPending,
			LectureCode:        lecture.LectureCode,
			StudentCode:        studentCode,
			CouponIssuanceCode: issuance,
		}
		if price == 0 {
			now := s.now()
			m.PaymentStatus = model.StatusPaid
			m.PaidAt = &now
		}
		if err := s.repo.Create(ctx, m); err != nil {
			return pkgErrors.Wrap(err, "create payment")
		}

		if price == 0 {
			if _, err := s.ownership.Grant(ctx, lecture.LectureCode, studentCode); err != nil {
				return err
			}
		} else {
			checkout = &TokenRequest{
				OrderID:       m.PaymentCode,
				Amount:        int64(price),
				ItemID:        strconv.FormatInt(lecture.LectureCode, 10),
				ItemName:      lecture.LectureTitle,
				CustomerName:  student.MemberName,
				CustomerEmail: student.MemberEmail,
			}
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if checkout != nil {
		token, err := s.gateway.CreateToken(ctx, *checkout)
		if err != nil {
			logger.Log.WithError(err).WithField("payment_code", out.PaymentCode).Error("payment token failed")
			if cerr := s.abandon(ctx, out); cerr != nil {
				logger.Log.WithError(cerr).WithField("payment_code", out.PaymentCode).Error("abandon payment failed")
			}
			return nil, exceptions.WithDetail(exceptions.ExternalServiceFailure, "payment gateway unavailable")
		}
		if err := s.repo.Updates(ctx, out.PaymentCode, map[string]any{"payment_token": token}); err != nil {
			return nil, pkgErrors.Wrap(err, "store payment token")
		}
		out.PaymentToken = token
	}

	paymentTransitions.WithLabelValues(out.PaymentStatus).Inc()
	logger.Log.WithField("payment_code", out.PaymentCode).WithField("price", out.PaymentPrice).Info("payment created")
	resp := dto.ToPaymentResponse(out)
	return &resp, nil
}

// abandon deletes a payment that never got a gateway token and releases its
// coupon. It survives cancellation of the request context.
func (s *PaymentService) abandon(ctx context.Context, m *model.PaymentModel) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, m.PaymentCode); err != nil {
			return pkgErrors.Wrap(err, "delete payment")
		}
		if m.CouponIssuanceCode != nil {
			return s.coupons.Release(ctx, *m.CouponIssuanceCode)
		}
		return nil
	})
}

// statusFor maps a Midtrans transaction status to a payment status. An empty
// result means the notification does not move the payment.
func statusFor(n dto.MidtransNotification) (string, error) {
	switch strings.ToLower(n.TransactionStatus) {
	case "capture":
		switch strings.ToLower(n.FraudStatus) {
		case "", "accept":
			return model.StatusPaid, nil
		case "challenge":
			return "", nil
		default:
			return model.StatusCanceled, nil
		}
	case "settlement":
		return model.StatusPaid, nil
	case "pending":
		return "", nil
	case "expire":
		return model.StatusExpired, nil
	case "cancel", "deny":
		return model.StatusCanceled, nil
	default:
		return "", exceptions.WithDetail(exceptions.InvalidParameter, "unsupported transaction_status "+n.TransactionStatus)
	}
}

// HandleNotification applies a gateway notification. Repeating the
// notification that settled a payment is a no-op; a conflicting one fails
// with PaymentAlreadySettled.
func (s *PaymentService) HandleNotification(ctx context.Context, n dto.MidtransNotification) (*dto.PaymentResponse, error) {
	if s.serverKey != "" && !VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey, n.SignatureKey) {
		return nil, exceptions.WithDetail(exceptions.Unauthorized, "invalid notification signature")
	}
	next, err := statusFor(n)
	if err != nil {
		return nil, err
	}
	raw, err := sonic.Marshal(n)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "encode notification")
	}

	var out *model.PaymentModel
	var moved bool
	err = database.InTx(ctx, s.db, func(ctx context.Context) error {
		m, err := s.repo.FindForUpdate(ctx, n.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.New(exceptions.PaymentNotFound)
			}
			return pkgErrors.Wrap(err, "find payment")
		}
		out = m

		fields := map[string]any{"raw_notification": datatypes.JSON(raw)}
		switch {
		case next == "" || next == m.PaymentStatus:
		case m.PaymentStatus != model.StatusPending:
			return exceptions.WithDetail(exceptions.PaymentAlreadySettled, m.PaymentStatus)
		default:
			fields["payment_status"] = next
			m.PaymentStatus = next
			moved = true
			if next == model.StatusPaid {
				now := s.now()
				fields["paid_at"] = now
				m.PaidAt = &now
				if _, err := s.ownership.Grant(ctx, m.LectureCode, m.StudentCode); err != nil && !exceptions.Is(err, exceptions.AlreadyOwned) {
					return err
				}
			}
		}
		m.RawNotification = raw
		return pkgErrors.Wrap(s.repo.Updates(ctx, m.PaymentCode, fields), "update payment")
	})
	if err != nil {
		return nil, err
	}

	if moved {
		paymentTransitions.WithLabelValues(out.PaymentStatus).Inc()
		logger.Log.WithField("payment_code", out.PaymentCode).WithField("status", out.PaymentStatus).Info("payment status changed")
	}
	resp := dto.ToPaymentResponse(out)
	return &resp, nil
}

// FindByCode returns a payment. studentCode, when set, must own it.
func (s *PaymentService) FindByCode(ctx context.Context, code string, studentCode *int64) (*dto.PaymentResponse, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.PaymentNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find payment")
	}
	if studentCode != nil && m.StudentCode != *studentCode {
		return nil, exceptions.WithDetail(exceptions.Forbidden, "payment belongs to another student")
	}
	resp := dto.ToPaymentResponse(m)
	return &resp, nil
}

func (s *PaymentService) ListByStudent(ctx context.Context, studentCode int64, p helper.Paging) ([]dto.PaymentResponse, int64, error) {
	rows, total, err := s.repo.ListByStudent(ctx, studentCode, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list payments")
	}
	return dto.ToPaymentResponses(rows), total, nil
}
