package service

import (
	"context"
	"errors"
	"slices"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/lectures/lecture_categories/dto"
	"learnsmate_backend/internals/features/lectures/lecture_categories/model"
	"learnsmate_backend/internals/features/lectures/lecture_categories/repository"
	lectureRepo "learnsmate_backend/internals/features/lectures/lectures/repository"
)

type LectureCategoryService struct {
	repo     *repository.LectureCategoryRepository
	lectures *lectureRepo.LectureRepository
}

func NewLectureCategoryService(db *gorm.DB) *LectureCategoryService {
	return &LectureCategoryService{
		repo:     repository.NewLectureCategoryRepository(db),
		lectures: lectureRepo.NewLectureRepository(db),
	}
}

func (s *LectureCategoryService) List(ctx context.Context) ([]dto.LectureCategoryResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list lecture categories")
	}
	return dto.ToLectureCategoryResponses(rows), nil
}

func (s *LectureCategoryService) Register(ctx context.Context, req dto.LectureCategoryRequest) (*dto.LectureCategoryResponse, error) {
	m := &model.LectureCategoryModel{LectureCategoryName: req.LectureCategoryName}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.DuplicateCategory)
		}
		return nil, pkgErrors.Wrap(err, "create lecture category")
	}
	return &dto.LectureCategoryResponse{LectureCategoryCode: m.LectureCategoryCode, LectureCategoryName: m.LectureCategoryName}, nil
}

// Attach links categories to a lecture. Re-attaching an existing pair is a no-op.
func (s *LectureCategoryService) Attach(ctx context.Context, lectureCode int64, req dto.AttachCategoriesRequest) ([]dto.LectureCategoryResponse, error) {
	if err := s.ensureLecture(ctx, lectureCode); err != nil {
		return nil, err
	}
	codes := slices.Compact(slices.Sorted(slices.Values(req.LectureCategoryCodes)))
	n, err := s.repo.CountExisting(ctx, codes)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check lecture categories")
	}
	if n != int64(len(codes)) {
		return nil, exceptions.New(exceptions.CategoryNotFound)
	}
	if err := s.repo.Attach(ctx, lectureCode, codes); err != nil {
		return nil, pkgErrors.Wrap(err, "attach lecture categories")
	}
	return s.ListByLecture(ctx, lectureCode)
}

func (s *LectureCategoryService) Detach(ctx context.Context, lectureCode, categoryCode int64) error {
	n, err := s.repo.Detach(ctx, lectureCode, categoryCode)
	if err != nil {
		return pkgErrors.Wrap(err, "detach lecture category")
	}
	if n == 0 {
		return exceptions.New(exceptions.CategoryNotFound)
	}
	return nil
}

func (s *LectureCategoryService) ListByLecture(ctx context.Context, lectureCode int64) ([]dto.LectureCategoryResponse, error) {
	if err := s.ensureLecture(ctx, lectureCode); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByLecture(ctx, lectureCode)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list lecture categories")
	}
	return dto.ToLectureCategoryResponses(rows), nil
}

func (s *LectureCategoryService) ensureLecture(ctx context.Context, code int64) error {
	ok, err := s.lectures.Exists(ctx, code)
	if err != nil {
		return pkgErrors.Wrap(err, "check lecture")
	}
	if !ok {
		return exceptions.New(exceptions.LectureNotFound)
	}
	return nil
}
