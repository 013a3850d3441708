package service

import (
	"context"
	"errors"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/auth/dto"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

// ResetPassword replaces an admin's password once the admin's phone has been
// verified over SMS. The verified marker is consumed.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exceptions.New(exceptions.AdminNotFound)
		}
		return pkgErrors.Wrap(err, "find admin")
	}
	if helper.NormalizePhone(admin.AdminPhone) != helper.NormalizePhone(req.Phone) {
		return exceptions.WithDetail(exceptions.Forbidden, "phone does not match the account")
	}
	if err := s.phones.ConsumeVerified(ctx, req.Phone); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hash password")
	}
	if err := s.admins.UpdatePassword(ctx, admin.AdminCode, string(hashed)); err != nil {
		return pkgErrors.Wrap(err, "update password")
	}
	logger.Log.WithField("admin_code", admin.AdminCode).Info("admin password reset")
	return nil
}
