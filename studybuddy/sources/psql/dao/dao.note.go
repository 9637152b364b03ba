package dao

import (
	"context"
	"errors"

	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) Insert(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

// GetByID scopes the lookup to the owning user. Returns (nil, nil) when the
// note does not exist or belongs to someone else.
func (dao *NoteDAO) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (dao *NoteDAO) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (dao *NoteDAO) UpdateFlashcards(ctx context.Context, id uuid.UUID, flashcards datatypes.JSON) error {
	return dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Update("flashcards", flashcards).Error
}

func (dao *NoteDAO) UpdateQuiz(ctx context.Context, id uuid.UUID, quiz datatypes.JSON) error {
	return dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Update("quiz", quiz).Error
}
