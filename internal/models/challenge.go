package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChallengeDays is the number of day slots every challenge has.
const ChallengeDays = 3

type Challenge struct {
	ID         uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string                    `gorm:"size:255;not null" json:"title"`
	Category   string                    `gorm:"size:100" json:"category"`
	Plan       string                    `gorm:"type:text" json:"plan"`
	Days       datatypes.JSONSlice[bool] `gorm:"type:jsonb;not null" json:"days"`
	CurrentDay int                       `gorm:"default:0" json:"current_day"`
	IsComplete bool                      `gorm:"default:false;index" json:"is_complete"`
	Proofs     []Proof                   `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"proofs,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// Proof is append-only; rows are never updated. Multiple proofs may exist
// for the same day index.
type Proof struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	DayIndex    int       `gorm:"not null" json:"day_index"`
	ImageBase64 string    `gorm:"type:text;not null" json:"image_base64"`
	UploadedAt  time.Time `gorm:"not null" json:"uploaded_at"`
}

// NewDays returns a fresh all-false day slice.
func NewDays() datatypes.JSONSlice[bool] {
	return datatypes.NewJSONSlice(make([]bool, ChallengeDays))
}
