package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/verification/store"
	helperSMS "learnsmate_backend/internals/helpers/sms"
	"learnsmate_backend/internals/logger"
)

const (
	CodeTTL     = 5 * time.Minute
	VerifiedTTL = 10 * time.Minute

	// MaxAttempts wrong guesses kill the pending code.
	MaxAttempts   = 5
	AttemptWindow = CodeTTL
)

type VerificationService struct {
	store  store.CodeStore
	sender helperSMS.Sender
}

func NewVerificationService(s store.CodeStore, sender helperSMS.Sender) *VerificationService {
	return &VerificationService{store: s, sender: sender}
}

// SendCode stores a fresh 6-digit code and texts it to phone.
func (s *VerificationService) SendCode(ctx context.Context, phone string) error {
	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "generate code")
	}
	if err := s.store.SaveCode(ctx, phone, code, CodeTTL); err != nil {
		return errors.Wrap(err, "save code")
	}
	text := fmt.Sprintf("[LearnsMate] verification code: %s", code)
	if err := s.sender.Send(ctx, phone, text); err != nil {
		logger.Log.WithError(err).WithField("phone", maskPhone(phone)).Warn("sms delivery failed")
		_ = s.store.DeleteCode(ctx, phone)
		return exceptions.WithDetail(exceptions.ExternalServiceFailure, "sms delivery failed")
	}
	return nil
}

// VerifyCode consumes a matching code and marks the phone as verified.
// After MaxAttempts failures the pending code is deleted.
func (s *VerificationService) VerifyCode(ctx context.Context, phone, code string) error {
	stored, err := s.store.GetCode(ctx, phone)
	if err != nil {
		return errors.Wrap(err, "read code")
	}
	if stored == "" {
		return exceptions.New(exceptions.InvalidVerificationCode)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return s.failAttempt(ctx, phone)
	}
	if err := s.store.DeleteCode(ctx, phone); err != nil {
		return errors.Wrap(err, "delete code")
	}
	if err := s.store.ClearAttempts(ctx, phone); err != nil {
		return errors.Wrap(err, "clear attempts")
	}
	if err := s.store.MarkVerified(ctx, phone, VerifiedTTL); err != nil {
		return errors.Wrap(err, "mark verified")
	}
	return nil
}

// ConsumeVerified checks and clears the verified marker so it is single use.
func (s *VerificationService) ConsumeVerified(ctx context.Context, phone string) error {
	ok, err := s.store.IsVerified(ctx, phone)
	if err != nil {
		return errors.Wrap(err, "read verified marker")
	}
	if !ok {
		return exceptions.New(exceptions.PhoneNotVerified)
	}
	return s.store.ClearVerified(ctx, phone)
}

func (s *VerificationService) failAttempt(ctx context.Context, phone string) error {
	n, err := s.store.IncrAttempts(ctx, phone, AttemptWindow)
	if err != nil {
		return errors.Wrap(err, "count attempt")
	}
	if n >= MaxAttempts {
		if err := s.store.DeleteCode(ctx, phone); err != nil {
			return errors.Wrap(err, "delete code")
		}
		logger.Log.WithField("phone", maskPhone(phone)).Warn("verification code locked after repeated failures")
	}
	return exceptions.New(exceptions.InvalidVerificationCode)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func maskPhone(p string) string {
	if len(p) <= 4 {
		return "****"
	}
	return "****" + p[len(p)-4:]
}
