package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	dbutil "github.com/lumen-studio/recruit-intake/internal/db"
	"github.com/lumen-studio/recruit-intake/internal/models"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest accepted admin password, in characters.
const MinPasswordLength = 6

// AdminService manages admin accounts and their lifecycle guards.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService constructs an AdminService.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// validatePassword enforces the password length policy.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > security.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// Authenticate checks a username/password pair.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	errFind := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&admin).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, internalError("find admin", errFind)
	}
	if !security.CheckPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// List returns all admins, oldest first.
func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	var rows []models.Admin
	if errFind := s.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&rows).Error; errFind != nil {
		return nil, internalError("list admins", errFind)
	}
	return rows, nil
}

// Get returns a single admin by id.
func (s *AdminService) Get(ctx context.Context, id uint64) (*models.Admin, error) {
	var admin models.Admin
	if errFind := s.db.WithContext(ctx).First(&admin, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, internalError("find admin", errFind)
	}
	return &admin, nil
}

// Create adds an admin. Usernames are matched exactly; the unique index is
// the final arbiter when two creates race.
func (s *AdminService) Create(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewError(CodeValidation, "username and password are required", nil)
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	var existing int64
	if errCount := s.db.WithContext(ctx).Model(&models.Admin{}).Where("username = ?", username).Count(&existing).Error; errCount != nil {
		return nil, internalError("check username", errCount)
	}
	if existing > 0 {
		return nil, ErrUsernameTaken
	}

	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return nil, internalError("hash password", errHash)
	}

	now := time.Now().UTC()
	admin := models.Admin{
		Username:  username,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errCreate := s.db.WithContext(ctx).Create(&admin).Error; errCreate != nil {
		if dbutil.IsUniqueViolation(errCreate) {
			return nil, ErrUsernameTaken
		}
		return nil, internalError("create admin", errCreate)
	}
	return &admin, nil
}

// ChangePassword replaces the password hash of admin id.
// The old password is not required; the caller is already an authenticated admin.
func (s *AdminService) ChangePassword(ctx context.Context, id uint64, password string) (*models.Admin, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return nil, internalError("hash password", errHash)
	}

	res := s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]any{"password": hash, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, internalError("change password", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAdminNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes admin targetID on behalf of callerID.
//
// Guards run in order: self-deletion, then last-admin. The admin rows are
// locked for the duration of the transaction and the DELETE itself only
// matches while more than one admin exists, so concurrent deletes cannot
// leave the table empty.
func (s *AdminService) Delete(ctx context.Context, callerID, targetID uint64) error {
	if callerID == targetID {
		return ErrSelfDeletion
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint64
		if errPluck := dbutil.ForUpdate(tx.Model(&models.Admin{})).Order("id ASC").Pluck("id", &ids).Error; errPluck != nil {
			return internalError("load admins", errPluck)
		}
		if len(ids) <= 1 {
			return ErrLastAdmin
		}
		if !slices.Contains(ids, targetID) {
			return ErrAdminNotFound
		}

		res := tx.Exec("DELETE FROM admins WHERE id = ? AND (SELECT COUNT(*) FROM admins) > 1", targetID)
		if res.Error != nil {
			return internalError("delete admin", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrLastAdmin
		}
		return nil
	})
}

// EnsureAdmin creates username with password unless an admin with that
// username already exists. It reports whether a record was created.
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.Create(ctx, username, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUsernameTaken):
		return false, nil
	default:
		return false, err
	}
}
