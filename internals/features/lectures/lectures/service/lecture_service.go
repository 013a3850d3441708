package service

import (
	"context"
	"errors"
	"mime/multipart"
	"slices"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/exceptions"
	categoryRepo "learnsmate_backend/internals/features/lectures/lecture_categories/repository"
	"learnsmate_backend/internals/features/lectures/lectures/dto"
	"learnsmate_backend/internals/features/lectures/lectures/model"
	"learnsmate_backend/internals/features/lectures/lectures/repository"
	videoRepo "learnsmate_backend/internals/features/lectures/video_by_lectures/repository"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	helperOSS "learnsmate_backend/internals/helpers/oss"
	"learnsmate_backend/internals/logger"
)

const thumbnailDir = "lectures/thumbnails"

type LectureService struct {
	db         *gorm.DB
	repo       *repository.LectureRepository
	videos     *videoRepo.VideoByLectureRepository
	categories *categoryRepo.LectureCategoryRepository
	members    *memberService.MemberService
	storage    helperOSS.Storage
}

// NewLectureService builds the service. storage may be nil when uploads are disabled.
func NewLectureService(db *gorm.DB, storage helperOSS.Storage) *LectureService {
	return &LectureService{
		db:         db,
		repo:       repository.NewLectureRepository(db),
		videos:     videoRepo.NewVideoByLectureRepository(db),
		categories: categoryRepo.NewLectureCategoryRepository(db),
		members:    memberService.NewMemberService(db),
		storage:    storage,
	}
}

// Register creates a lecture for tutorCode and links its categories.
func (s *LectureService) Register(ctx context.Context, tutorCode int64, req dto.RegisterLectureRequest) (*dto.LectureResponse, error) {
	if _, err := s.members.FindTutorByCode(ctx, tutorCode); err != nil {
		return nil, err
	}
	codes := slices.Compact(slices.Sorted(slices.Values(req.CategoryCodes)))

	m := req.ToModel(tutorCode)
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		if len(codes) > 0 {
			n, err := s.categories.CountExisting(ctx, codes)
			if err != nil {
				return pkgErrors.Wrap(err, "check lecture categories")
			}
			if n != int64(len(codes)) {
				return exceptions.New(exceptions.CategoryNotFound)
			}
		}
		if err := s.repo.Create(ctx, m); err != nil {
			return pkgErrors.Wrap(err, "create lecture")
		}
		return pkgErrors.Wrap(s.categories.Attach(ctx, m.LectureCode, codes), "attach categories")
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToLectureResponse(m)
	return &resp, nil
}

// FindByCode returns the lecture entity; LectureNotFound when absent.
func (s *LectureService) FindByCode(ctx context.Context, code int64) (*model.LectureModel, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.LectureNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find lecture")
	}
	return m, nil
}

// GetDetail counts a view and returns the lecture with its categories and video count.
func (s *LectureService) GetDetail(ctx context.Context, code int64) (*dto.LectureResponse, error) {
	if err := s.repo.IncrementClickCount(ctx, code); err != nil {
		return nil, pkgErrors.Wrap(err, "count lecture click")
	}
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	videoCount, err := s.videos.CountByLectureCode(ctx, code)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "count lecture videos")
	}
	cats, err := s.categories.ListByLecture(ctx, code)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list lecture categories")
	}

	resp := dto.ToLectureResponse(m)
	resp.VideoCount = &videoCount
	resp.Categories = dto.ToLectureCategories(cats)
	return &resp, nil
}

func (s *LectureService) List(ctx context.Context, f repository.LectureFilter, p helper.Paging) ([]dto.LectureResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list lectures")
	}
	return dto.ToLectureResponses(rows), total, nil
}

func (s *LectureService) ListByTutor(ctx context.Context, tutorCode int64, p helper.Paging) ([]dto.LectureResponse, int64, error) {
	if _, err := s.members.FindTutorByCode(ctx, tutorCode); err != nil {
		return nil, 0, err
	}
	return s.List(ctx, repository.LectureFilter{TutorCode: &tutorCode}, p)
}

// Edit applies partial changes. A non-nil tutorCode restricts it to the tutor's lectures.
func (s *LectureService) Edit(ctx context.Context, code int64, req dto.EditLectureRequest, tutorCode *int64) (*dto.LectureResponse, error) {
	if _, err := s.owned(ctx, code, tutorCode); err != nil {
		return nil, err
	}
	if up := req.ToUpdates(); len(up) > 0 {
		if err := s.repo.Updates(ctx, code, up); err != nil {
			return nil, pkgErrors.Wrap(err, "update lecture")
		}
	}
	return s.get(ctx, code)
}

// Deactivate takes the lecture off sale.
func (s *LectureService) Deactivate(ctx context.Context, code int64, tutorCode *int64) error {
	if _, err := s.owned(ctx, code, tutorCode); err != nil {
		return err
	}
	return pkgErrors.Wrap(s.repo.Updates(ctx, code, map[string]any{"lecture_status": false}), "deactivate lecture")
}

// Confirm marks the lecture as reviewed by an admin.
func (s *LectureService) Confirm(ctx context.Context, code int64) (*dto.LectureResponse, error) {
	if _, err := s.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	if err := s.repo.Updates(ctx, code, map[string]any{"lecture_confirm_status": true}); err != nil {
		return nil, pkgErrors.Wrap(err, "confirm lecture")
	}
	logger.Log.WithField("lecture_code", code).Info("lecture confirmed")
	return s.get(ctx, code)
}

// UploadThumbnail stores the image as WebP and replaces lecture_image.
func (s *LectureService) UploadThumbnail(ctx context.Context, code int64, fh *multipart.FileHeader, tutorCode *int64) (*dto.LectureResponse, error) {
	m, err := s.owned(ctx, code, tutorCode)
	if err != nil {
		return nil, err
	}
	url, err := helperOSS.UploadImageAsWebP(ctx, s.storage, thumbnailDir, fh, helperOSS.DefaultWebPOptions())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Updates(ctx, code, map[string]any{"lecture_image": url}); err != nil {
		_ = helperOSS.DeleteByPublicURL(ctx, s.storage, url)
		return nil, pkgErrors.Wrap(err, "update lecture image")
	}
	if m.LectureImage != nil {
		if err := helperOSS.DeleteByPublicURL(ctx, s.storage, *m.LectureImage); err != nil {
			logger.Log.WithError(err).WithField("lecture_code", code).Warn("old thumbnail not removed")
		}
	}
	return s.get(ctx, code)
}

func (s *LectureService) get(ctx context.Context, code int64) (*dto.LectureResponse, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToLectureResponse(m)
	return &resp, nil
}

func (s *LectureService) owned(ctx context.Context, code int64, tutorCode *int64) (*model.LectureModel, error) {
	m, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tutorCode != nil && m.TutorCode != *tutorCode {
		return nil, exceptions.WithDetail(exceptions.Forbidden, "lecture belongs to another tutor")
	}
	return m, nil
}
