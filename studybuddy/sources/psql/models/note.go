package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NoteSourceText = "text"
	NoteSourceURL  = "url"
)

// Note keeps the AI study aids inline; the raw source content lives in
// object storage under ObjectKey.
type Note struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null"`
	Subject    string    `json:"subject" gorm:"type:varchar(255)"`
	SourceType string    `json:"source_type" gorm:"type:varchar(20);not null;default:'text'"`
	SourceURL  string    `json:"source_url" gorm:"type:text"`
	ObjectKey  string    `json:"-" gorm:"type:varchar(512);not null"`

	Summary    string         `json:"summary" gorm:"type:text"`
	Flashcards datatypes.JSON `json:"flashcards" gorm:"type:jsonb"`
	Quiz       datatypes.JSON `json:"quiz" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
