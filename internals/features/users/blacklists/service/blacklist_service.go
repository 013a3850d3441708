package service

import (
	"context"
	"errors"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/blacklists/dto"
	"learnsmate_backend/internals/features/users/blacklists/model"
	"learnsmate_backend/internals/features/users/blacklists/repository"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type BlacklistService struct {
	db      *gorm.DB
	repo    *repository.BlacklistRepository
	members *memberService.MemberService
}

func NewBlacklistService(db *gorm.DB) *BlacklistService {
	return &BlacklistService{
		db:      db,
		repo:    repository.NewBlacklistRepository(db),
		members: memberService.NewMemberService(db),
	}
}

// Register blacklists a member and deactivates the account in one transaction.
func (s *BlacklistService) Register(ctx context.Context, adminCode int64, req dto.RegisterBlacklistRequest) (*dto.BlacklistResponse, error) {
	req.Normalize()
	var created *model.BlacklistModel
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		member, err := s.members.FindByCode(ctx, req.MemberCode)
		if err != nil {
			return err
		}
		exists, err := s.repo.ExistsByMember(ctx, req.MemberCode)
		if err != nil {
			return pkgErrors.Wrap(err, "check blacklist")
		}
		if exists {
			return exceptions.New(exceptions.AlreadyBlacklisted)
		}

		m := &model.BlacklistModel{
			BlackReason: req.BlackReason,
			MemberCode:  req.MemberCode,
			AdminCode:   adminCode,
		}
		if err := s.repo.Create(ctx, m); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return exceptions.New(exceptions.AlreadyBlacklisted)
			}
			return pkgErrors.Wrap(err, "create blacklist")
		}
		if err := s.members.SetActive(ctx, req.MemberCode, false); err != nil {
			return err
		}
		m.Member = member
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("member_code", req.MemberCode).WithField("admin_code", adminCode).Info("member blacklisted")
	resp := dto.ToBlacklistResponse(created)
	return &resp, nil
}

func (s *BlacklistService) ListStudents(ctx context.Context, p helper.Paging) ([]dto.BlacklistResponse, int64, error) {
	return s.list(ctx, constants.MemberTypeStudent, p)
}

func (s *BlacklistService) ListTutors(ctx context.Context, p helper.Paging) ([]dto.BlacklistResponse, int64, error) {
	return s.list(ctx, constants.MemberTypeTutor, p)
}

func (s *BlacklistService) list(ctx context.Context, memberType string, p helper.Paging) ([]dto.BlacklistResponse, int64, error) {
	rows, total, err := s.repo.ListByMemberType(ctx, memberType, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list blacklist")
	}
	return dto.ToBlacklistResponses(rows), total, nil
}

func (s *BlacklistService) FindByMemberCode(ctx context.Context, memberCode int64) (*dto.BlacklistResponse, error) {
	m, err := s.repo.FindByMember(ctx, memberCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.BlacklistNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find blacklist")
	}
	resp := dto.ToBlacklistResponse(m)
	return &resp, nil
}

// Lift removes the blacklist record and reactivates the member.
func (s *BlacklistService) Lift(ctx context.Context, memberCode int64) error {
	return database.InTx(ctx, s.db, func(ctx context.Context) error {
		n, err := s.repo.DeleteByMember(ctx, memberCode)
		if err != nil {
			return pkgErrors.Wrap(err, "delete blacklist")
		}
		if n == 0 {
			return exceptions.New(exceptions.BlacklistNotFound)
		}
		return s.members.SetActive(ctx, memberCode, true)
	})
}
