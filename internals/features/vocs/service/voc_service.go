package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/vocs/dto"
	"learnsmate_backend/internals/features/vocs/model"
	"learnsmate_backend/internals/features/vocs/repository"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

type VocService struct {
	db   *gorm.DB
	repo *repository.VocRepository
}

func NewVocService(db *gorm.DB) *VocService {
	return &VocService{db: db, repo: repository.NewVocRepository(db)}
}

func (s *VocService) ListCategories(ctx context.Context) ([]dto.VocCategoryResponse, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list voc categories")
	}
	return dto.ToVocCategoryResponses(rows), nil
}

func (s *VocService) RegisterCategory(ctx context.Context, req dto.VocCategoryRequest) (*dto.VocCategoryResponse, error) {
	m := &model.VocCategoryModel{VocCategoryName: strings.TrimSpace(req.VocCategoryName)}
	if err := s.repo.CreateCategory(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, exceptions.New(exceptions.DuplicateCategory)
		}
		return nil, pkgErrors.Wrap(err, "create voc category")
	}
	return &dto.VocCategoryResponse{VocCategoryCode: m.VocCategoryCode, VocCategoryName: m.VocCategoryName}, nil
}

func (s *VocService) CountByCategory(ctx context.Context) ([]dto.VocCountByCategory, error) {
	rows, err := s.repo.CountByCategory(ctx)
	return rows, pkgErrors.Wrap(err, "count voc by category")
}

// Register opens a new ticket for the member.
func (s *VocService) Register(ctx context.Context, memberCode int64, req dto.RegisterVocRequest) (*dto.VocResponse, error) {
	req.Normalize()
	ok, err := s.repo.CategoryExists(ctx, req.VocCategoryCode)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "check voc category")
	}
	if !ok {
		return nil, exceptions.New(exceptions.CategoryNotFound)
	}

	m := &model.VocModel{
		VocCode:         uuid.NewString(),
		VocContent:      req.VocContent,
		VocCategoryCode: req.VocCategoryCode,
		MemberCode:      memberCode,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, pkgErrors.Wrap(err, "create voc")
	}
	resp := dto.ToVocResponse(m)
	return &resp, nil
}

func (s *VocService) FindByCode(ctx context.Context, code string) (*dto.VocResponse, error) {
	m, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToVocResponse(m)
	return &resp, nil
}

func (s *VocService) find(ctx context.Context, code string) (*model.VocModel, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.New(exceptions.VocNotFound)
		}
		return nil, pkgErrors.Wrap(err, "find voc")
	}
	return m, nil
}

func (s *VocService) List(ctx context.Context, p helper.Paging) ([]dto.VocResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "list voc")
	}
	return dto.ToVocResponses(rows), total, nil
}

func (s *VocService) Filter(ctx context.Context, f dto.VocFilterRequest, p helper.Paging) ([]dto.VocResponse, int64, error) {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return nil, 0, exceptions.WithDetail(exceptions.InvalidParameter, "end_date is before start_date")
	}
	rows, total, err := s.repo.Filter(ctx, f, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(err, "filter voc")
	}
	return dto.ToVocResponses(rows), total, nil
}

// Answer records the single admin answer and marks the ticket answered.
func (s *VocService) Answer(ctx context.Context, adminCode int64, code string, req dto.AnswerVocRequest) (*dto.VocResponse, error) {
	err := database.InTx(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.find(ctx, code); err != nil {
			return err
		}
		ok, err := s.repo.MarkAnswered(ctx, code)
		if err != nil {
			return pkgErrors.Wrap(err, "mark voc answered")
		}
		if !ok {
			return exceptions.New(exceptions.VocAlreadyAnswered)
		}
		a := &model.VocAnswerModel{
			VocAnswerContent: strings.TrimSpace(req.VocAnswerContent),
			VocCode:          code,
			AdminCode:        adminCode,
		}
		if err := s.repo.CreateAnswer(ctx, a); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return exceptions.New(exceptions.VocAlreadyAnswered)
			}
			return pkgErrors.Wrap(err, "create voc answer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("voc_code", code).WithField("admin_code", adminCode).Info("voc answered")
	return s.FindByCode(ctx, code)
}

// Rate stores the author's satisfaction with the answer.
func (s *VocService) Rate(ctx context.Context, memberCode int64, code string, req dto.SatisfactionRequest) (*dto.VocResponse, error) {
	m, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if m.MemberCode != memberCode {
		return nil, exceptions.WithDetail(exceptions.Forbidden, "voc belongs to another member")
	}
	if !m.VocAnswerStatus {
		return nil, exceptions.WithDetail(exceptions.InvalidParameter, "voc has not been answered")
	}
	if err := s.repo.SetSatisfaction(ctx, code, req.VocAnswerSatisfaction); err != nil {
		return nil, pkgErrors.Wrap(err, "rate voc")
	}
	m.VocAnswerSatisfaction = &req.VocAnswerSatisfaction
	resp := dto.ToVocResponse(m)
	return &resp, nil
}
