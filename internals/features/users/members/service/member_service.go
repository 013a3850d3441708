package service

import (
	"context"
	"errors"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/members/dto"
	"learnsmate_backend/internals/features/users/members/model"
	"learnsmate_backend/internals/features/users/members/repository"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type MemberService struct {
	repo *repository.MemberRepository
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{repo: repository.NewMemberRepository(db)}
}

func (s *MemberService) Register(ctx context.Context, req dto.RegisterMemberRequest) (*dto.MemberResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.MemberEmail)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check member email")
	}
	if exists {
		return nil, exceptions.New(exceptions.DuplicateEmail)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.MemberPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "hash password")
	}

	m := req.ToModel(string(hashed))
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.DuplicateEmail)
		}
		return nil, pkgErrors.Wrap(err, "create member")
	}

	logger.Log.WithField("member_code", m.MemberCode).Info("member registered")
	resp := dto.ToMemberResponse(m)
	return &resp, nil
}

func (s *MemberService) FindByCode(ctx context.Context, code int64) (*model.MemberModel, error) {
	return s.find(ctx, code, "", exceptions.UserNotFound)
}

// FindStudentByCode fails with StudentNotFound when the member is missing or not a student.
func (s *MemberService) FindStudentByCode(ctx context.Context, code int64) (*model.MemberModel, error) {
	return s.find(ctx, code, constants.MemberTypeStudent, exceptions.StudentNotFound)
}

func (s *MemberService) FindTutorByCode(ctx context.Context, code int64) (*model.MemberModel, error) {
	return s.find(ctx, code, constants.MemberTypeTutor, exceptions.TutorNotFound)
}

func (s *MemberService) find(ctx context.Context, code int64, memberType string, notFound exceptions.StatusEnum) (*model.MemberModel, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(notFound)
		}
		return nil, pkgErrors.Wrap(err, "find member")
	}
	if memberType != "" && m.MemberType != memberType {
		return nil, exceptions.New(notFound)
	}
	return m, nil
}

func (s *MemberService) GetMember(ctx context.Context, code int64) (*dto.MemberResponse, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToMemberResponse(m)
	return &resp, nil
}

func (s *MemberService) ListStudents(ctx context.Context, p helper.Paging) ([]dto.MemberResponse, int64, error) {
	return s.listByType(ctx, constants.MemberTypeStudent, p)
}

func (s *MemberService) ListTutors(ctx context.Context, p helper.Paging) ([]dto.MemberResponse, int64, error) {
	return s.listByType(ctx, constants.MemberTypeTutor, p)
}

func (s *MemberService) listByType(ctx context.Context, memberType string, p helper.Paging) ([]dto.MemberResponse, int64, error) {
	rows, total, err := s.repo.ListByType(ctx, memberType, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list members")
	}
	return dto.ToMemberResponses(rows), total, nil
}

func (s *MemberService) Edit(ctx context.Context, code int64, req dto.EditMemberRequest) (*dto.MemberResponse, error) {
	if _, err := s.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	if up := req.ToUpdates(); len(up) > 0 {
		if err := s.repo.Updates(ctx, code, up); err != nil {
			return nil, pkgErrors.Wrap(err, "update member")
		}
	}
	return s.GetMember(ctx, code)
}

// SetActive flips member_flag. A deactivated member cannot log in.
func (s *MemberService) SetActive(ctx context.Context, code int64, active bool) error {
	if _, err := s.FindByCode(ctx, code); err != nil {
		return err
	}
	if err := s.repo.SetFlag(ctx, code, active); err != nil {
		return pkgErrors.Wrap(err, "set member flag")
	}
	return nil
}

func (s *MemberService) Deactivate(ctx context.Context, code int64) error {
	return s.SetActive(ctx, code, false)
}
