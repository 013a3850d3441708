package service

import (
	"context"
	"errors"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/dto"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/model"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/repository"
	lectureRepo "learnsmate_backend/internals/features/lectures/lectures/repository"
	memberService "learnsmate_backend/internals/features/users/members/service"
)

type LectureByStudentService struct {
	repo     *repository.LectureByStudentRepository
	lectures *lectureRepo.LectureRepository
	members  *memberService.MemberService
}

func NewLectureByStudentService(db *gorm.DB) *LectureByStudentService {
	return &LectureByStudentService{
		repo:     repository.NewLectureByStudentRepository(db),
		lectures: lectureRepo.NewLectureRepository(db),
		members:  memberService.NewMemberService(db),
	}
}

// FindByStudentCode lists every lecture the student owns.
func (s *LectureByStudentService) FindByStudentCode(ctx context.Context, studentCode int64) ([]dto.LectureByStudentResponse, error) {
	if _, err := s.members.FindStudentByCode(ctx, studentCode); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindByStudentCode(ctx, studentCode)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "find lectures by student")
	}
	return dto.ToLectureByStudentResponses(rows), nil
}

func (s *LectureByStudentService) Owns(ctx context.Context, lectureCode, studentCode int64) (bool, error) {
	ok, err := s.repo.Owns(ctx, lectureCode, studentCode)
	return ok, pkgErrors.Wrap(err, "check ownership")
}

// Grant gives the student ownership of the lecture. A previously revoked row
// is reactivated; an active one is AlreadyOwned.
func (s *LectureByStudentService) Grant(ctx context.Context, lectureCode, studentCode int64) (*dto.LectureByStudentResponse, error) {
	if ok, err := s.lectures.Exists(ctx, lectureCode); err != nil {
		return nil, pkgErrors.Wrap(err, "check lecture")
	} else if !ok {
		return nil, exceptions.New(exceptions.LectureNotFound)
	}
	if _, err := s.members.FindStudentByCode(ctx, studentCode); err != nil {
		return nil, err
	}

	existing, err := s.repo.Find(ctx, lectureCode, studentCode)
	switch {
	case err == nil && existing.OwnStatus:
		return nil, exceptions.New(exceptions.AlreadyOwned)
	case err == nil:
		if err := s.repo.SetOwnStatus(ctx, existing.LectureByStudentCode, true); err != nil {
			return nil, pkgErrors.Wrap(err, "restore ownership")
		}
		existing.OwnStatus = true
		resp := dto.ToLectureByStudentResponse(existing)
		return &resp, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, pkgErrors.Wrap(err, "find ownership")
	}

	m := &model.LectureByStudentModel{LectureCode: lectureCode, StudentCode: studentCode, OwnStatus: true}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.AlreadyOwned)
		}
		return nil, pkgErrors.Wrap(err, "grant lecture")
	}
	resp := dto.ToLectureByStudentResponse(m)
	return &resp, nil
}

// Revoke clears ownership without deleting the history row.
func (s *LectureByStudentService) Revoke(ctx context.Context, lectureCode, studentCode int64) error {
	existing, err := s.repo.Find(ctx, lectureCode, studentCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exceptions.New(exceptions.LectureNotFound)
		}
		return pkgErrors.Wrap(err, "find ownership")
	}
	return pkgErrors.Wrap(s.repo.SetOwnStatus(ctx, existing.LectureByStudentCode, false), "revoke ownership")
}
