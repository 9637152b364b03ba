package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is one user's daily stress questionnaire result. At most one
// row exists per (user, calendar day); the day check is a half-open range
// query because Date carries time-of-day.
type Assessment struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_assessments_user_date,unique,priority:1"`
	User   User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Date   time.Time `json:"date" gorm:"not null;index:idx_assessments_user_date,unique,priority:2"`

	// Ten question keys mapped to the literal codes "A".."D".
	Responses datatypes.JSON `json:"responses" gorm:"type:jsonb;not null"`

	StressLevel       string         `json:"stressLevel" gorm:"type:varchar(20);not null"`
	Score             int            `json:"score" gorm:"not null"`
	Recommendations   datatypes.JSON `json:"recommendations" gorm:"type:jsonb;not null"`
	MotivationalQuote string         `json:"motivationalQuote" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
