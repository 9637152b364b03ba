package dao

import (
	"context"
	"errors"
	"time"

	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentDAO struct {
	DB *gorm.DB
}

func NewAssessmentDAO(db *gorm.DB) *AssessmentDAO {
	return &AssessmentDAO{DB: db}
}

// FindInRange looks up the user's assessment whose date falls in
// [start, end). Returns (nil, nil) when none exists.
func (dao *AssessmentDAO) FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*models.Assessment, error) {
	var a models.Assessment
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (dao *AssessmentDAO) Insert(ctx context.Context, a *models.Assessment) error {
	return dao.DB.WithContext(ctx).Create(a).Error
}

// ListRecent returns up to limit assessments for a user, newest date first.
func (dao *AssessmentDAO) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Assessment, error) {
	var out []models.Assessment
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListSince returns assessments with date >= since, oldest first.
func (dao *AssessmentDAO) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Assessment, error) {
	var out []models.Assessment
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllRecent is the admin view across users, newest date first.
func (dao *AssessmentDAO) ListAllRecent(ctx context.Context, limit int) ([]models.Assessment, error) {
	var out []models.Assessment
	err := dao.DB.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
