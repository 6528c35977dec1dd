package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/lumen-studio/recruit-intake/internal/models"
	"gorm.io/gorm"
)

// ApplicationInput is a candidate submission.
type ApplicationInput struct {
	RecruitmentID uint64 `json:"recruitmentId" validate:"required"`
	Email         string `json:"email" validate:"required,mailbox"`
	QQ            string `json:"qq" validate:"required,qq"`
	Bilibili      string `json:"bilibili" validate:"required"`
	Portfolio     string `json:"portfolio"`
}

// ApplicationFilter narrows ApplicationService.List. Zero values match everything.
type ApplicationFilter struct {
	RecruitmentID uint64
	Status        models.ApplicationStatus
}

// ApplicationRecruitment is the posting reference embedded in list rows.
type ApplicationRecruitment struct {
	Title string `json:"title"`
}

// ApplicationView is an application row with its posting title.
type ApplicationView struct {
	models.Application
	RecruitmentTitle string                 `json:"-"`
	Recruitment      ApplicationRecruitment `gorm:"-" json:"recruitment"`
}

// ApplicationService handles intake and review of applications.
type ApplicationService struct {
	db *gorm.DB
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Submit validates a submission and records it against an active recruitment.
func (s *ApplicationService) Submit(ctx context.Context, in ApplicationInput) (*models.Application, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.QQ = strings.TrimSpace(in.QQ)
	in.Bilibili = strings.TrimSpace(in.Bilibili)
	in.Portfolio = strings.TrimSpace(in.Portfolio)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if in.RecruitmentID > math.MaxInt64 {
		return nil, ErrPostingClosed
	}
	var rec models.Recruitment
	if errFind := s.db.WithContext(ctx).Select("id", "is_active").First(&rec, in.RecruitmentID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrPostingClosed
		}
		return nil, internalError("find recruitment", errFind)
	}
	if !rec.IsActive {
		return nil, ErrPostingClosed
	}

	app := models.Application{
		RecruitmentID: in.RecruitmentID,
		Email:         in.Email,
		QQ:            in.QQ,
		Bilibili:      in.Bilibili,
		Portfolio:     in.Portfolio,
		Status:        models.ApplicationStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&app).Error; errCreate != nil {
		return nil, internalError("create application", errCreate)
	}
	return &app, nil
}

// Get returns a single application.
func (s *ApplicationService) Get(ctx context.Context, id uint64) (*models.Application, error) {
	var app models.Application
	if errFind := s.db.WithContext(ctx).First(&app, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, internalError("find application", errFind)
	}
	return &app, nil
}

// List returns applications matching filter, newest first.
func (s *ApplicationService) List(ctx context.Context, filter ApplicationFilter) ([]ApplicationView, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	q := s.db.WithContext(ctx).Model(&models.Application{}).
		Select("applications.*, recruitments.title AS recruitment_title").
		Joins("LEFT JOIN recruitments ON recruitments.id = applications.recruitment_id")
	if filter.RecruitmentID != 0 {
		q = q.Where("applications.recruitment_id = ?", filter.RecruitmentID)
	}
	if filter.Status != "" {
		q = q.Where("applications.status = ?", string(filter.Status))
	}

	rows := make([]ApplicationView, 0)
	if errFind := q.Order("applications.created_at DESC").Order("applications.id DESC").Scan(&rows).Error; errFind != nil {
		return nil, internalError("list applications", errFind)
	}
	for i := range rows {
		rows[i].Recruitment = ApplicationRecruitment{Title: rows[i].RecruitmentTitle}
	}
	return rows, nil
}

// SetStatus moves application id to status. Both directions are allowed and
// setting the current status again is not an error.
func (s *ApplicationService) SetStatus(ctx context.Context, id uint64, status models.ApplicationStatus) (*models.Application, error) {
	status = models.ApplicationStatus(strings.TrimSpace(string(status)))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	res := s.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, internalError("update application status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return s.Get(ctx, id)
}
