package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lumen-studio/recruit-intake/internal/models"
	"gorm.io/gorm"
)

// RecruitmentInput holds fields for creating a recruitment.
type RecruitmentInput struct {
	Title       string
	Description string
	IsActive    *bool // Defaults to true when nil.
}

// RecruitmentPatch holds a partial update; nil fields keep their stored value.
type RecruitmentPatch struct {
	Title       *string
	Description *string
	IsActive    *bool
}

// RecruitmentSummary is a recruitment with its application count.
type RecruitmentSummary struct {
	models.Recruitment
	ApplicationCount int64 `json:"applicationCount"`
}

// RecruitmentService manages recruitment postings.
type RecruitmentService struct {
	db *gorm.DB
}

// NewRecruitmentService constructs a RecruitmentService.
func NewRecruitmentService(db *gorm.DB) *RecruitmentService {
	return &RecruitmentService{db: db}
}

// ListActive returns active recruitments, newest first.
func (s *RecruitmentService) ListActive(ctx context.Context) ([]models.Recruitment, error) {
	rows := make([]models.Recruitment, 0)
	if errFind := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error; errFind != nil {
		return nil, internalError("list recruitments", errFind)
	}
	return rows, nil
}

// ListAll returns every recruitment with its application count, newest first.
func (s *RecruitmentService) ListAll(ctx context.Context) ([]RecruitmentSummary, error) {
	rows := make([]RecruitmentSummary, 0)
	if errFind := s.db.WithContext(ctx).Model(&models.Recruitment{}).
		Select("recruitments.*, (SELECT COUNT(*) FROM applications WHERE applications.recruitment_id = recruitments.id) AS application_count").
		Order("recruitments.created_at DESC").Order("recruitments.id DESC").
		Scan(&rows).Error; errFind != nil {
		return nil, internalError("list recruitments", errFind)
	}
	return rows, nil
}

// Get returns a recruitment by id regardless of its active flag.
func (s *RecruitmentService) Get(ctx context.Context, id uint64) (*models.Recruitment, error) {
	var rec models.Recruitment
	if errFind := s.db.WithContext(ctx).First(&rec, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrRecruitmentNotFound
		}
		return nil, internalError("find recruitment", errFind)
	}
	return &rec, nil
}

// Create adds a recruitment. Title and description must be non-empty.
func (s *RecruitmentService) Create(ctx context.Context, in RecruitmentInput) (*models.Recruitment, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Description) == "" {
		return nil, NewError(CodeValidation, "title and description are required", nil)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := time.Now().UTC()
	rec := models.Recruitment{
		Title:       title,
		Description: in.Description,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if errCreate := s.db.WithContext(ctx).Create(&rec).Error; errCreate != nil {
		return nil, internalError("create recruitment", errCreate)
	}
	return &rec, nil
}

// Update applies a partial update to recruitment id.
func (s *RecruitmentService) Update(ctx context.Context, id uint64, patch RecruitmentPatch) (*models.Recruitment, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, NewError(CodeValidation, "title cannot be empty", nil)
		}
		updates["title"] = title
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, NewError(CodeValidation, "description cannot be empty", nil)
		}
		updates["description"] = *patch.Description
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	res := s.db.WithContext(ctx).Model(&models.Recruitment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, internalError("update recruitment", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecruitmentNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes recruitment id together with its applications.
func (s *RecruitmentService) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errDel := tx.Where("recruitment_id = ?", id).Delete(&models.Application{}).Error; errDel != nil {
			return internalError("delete applications", errDel)
		}
		res := tx.Delete(&models.Recruitment{}, id)
		if res.Error != nil {
			return internalError("delete recruitment", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecruitmentNotFound
		}
		return nil
	})
}
