package service

import (
	"context"
	"errors"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/admins/dto"
	"learnsmate_backend/internals/features/users/admins/model"
	"learnsmate_backend/internals/features/users/admins/repository"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type AdminService struct {
	repo *repository.AdminRepository
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{repo: repository.NewAdminRepository(db)}
}

func (s *AdminService) Signup(ctx context.Context, req dto.AdminSignupRequest) (*dto.AdminResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.AdminEmail)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check admin email")
	}
	if exists {
		return nil, exceptions.New(exceptions.DuplicateEmail)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "hash password")
	}
	m := req.ToModel(string(hashed))
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.DuplicateEmail)
		}
		return nil, pkgErrors.Wrap(err, "create admin")
	}
	logger.Log.WithField("admin_code", m.AdminCode).Info("admin registered")

	resp := dto.ToAdminResponse(m)
	return &resp, nil
}

func (s *AdminService) FindByCode(ctx context.Context, code int64) (*model.AdminModel, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.AdminNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find admin")
	}
	return m, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, code int64) (*dto.AdminResponse, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAdminResponse(m)
	return &resp, nil
}

func (s *AdminService) List(ctx context.Context, p helper.Paging) ([]dto.AdminResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list admins")
	}
	out := make([]dto.AdminResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAdminResponse(&rows[i]))
	}
	return out, total, nil
}

func (s *AdminService) Edit(ctx context.Context, code int64, req dto.EditAdminRequest) (*dto.AdminResponse, error) {
	if _, err := s.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	if up := req.ToUpdates(); len(up) > 0 {
		if err := s.repo.Updates(ctx, code, up); err != nil {
			return nil, pkgErrors.Wrap(err, "update admin")
		}
	}
	return s.GetAdmin(ctx, code)
}
