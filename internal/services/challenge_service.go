package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/just3days/backend/internal/models"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrProofNotFound     = errors.New("proof not found for this day")
	ErrInvalidDayIndex   = errors.New("invalid day index")
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) Create(userID uuid.UUID, title, category, plan string) (*models.Challenge, error) {
	challenge := models.Challenge{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Category:   category,
		Plan:       plan,
		Days:       models.NewDays(),
		CurrentDay: 0,
		IsComplete: false,
	}

	if err := s.db.Create(&challenge).Error; err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return &challenge, nil
}

// List returns all challenges owned by userID, optionally filtered by
// completion status. No ordering is applied.
func (s *ChallengeService) List(userID uuid.UUID, isComplete *bool) ([]models.Challenge, error) {
	query := s.db.Where("user_id = ?", userID)
	if isComplete != nil {
		query = query.Where("is_complete = ?", *isComplete)
	}

	var challenges []models.Challenge
	if err := query.Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	return challenges, nil
}

func (s *ChallengeService) Get(userID, challengeID uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.Where("id = ? AND user_id = ?", challengeID, userID).First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChallengeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	return &challenge, nil
}

// UploadProof marks the day slot done and appends a proof record. The day
// flag is flipped with a single jsonb_set statement so two concurrent
// uploads for different days cannot lose each other's write. Returns the
// updated days array and the completion flag as read before the update;
// uploads never complete a challenge on their own.
func (s *ChallengeService) UploadProof(userID, challengeID uuid.UUID, dayIndex int, imageBase64 string) ([]bool, bool, error) {
	if dayIndex < 0 || dayIndex >= models.ChallengeDays {
		return nil, false, ErrInvalidDayIndex
	}

	challenge, err := s.Get(userID, challengeID)
	if err != nil {
		return nil, false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Challenge{}).
			Where("id = ? AND user_id = ?", challengeID, userID).
			UpdateColumn("days", gorm.Expr("jsonb_set(days, ?, 'true'::jsonb)", fmt.Sprintf("{%d}", dayIndex)))
		if result.Error != nil {
			return fmt.Errorf("failed to update days: %w", result.Error)
		}

		proof := models.Proof{
			ID:          uuid.New(),
			ChallengeID: challengeID,
			DayIndex:    dayIndex,
			ImageBase64: imageBase64,
			UploadedAt:  time.Now(),
		}
		if err := tx.Create(&proof).Error; err != nil {
			return fmt.Errorf("failed to store proof: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	days := make([]bool, models.ChallengeDays)
	copy(days, challenge.Days)
	days[dayIndex] = true

	return days, challenge.IsComplete, nil
}

// Reset clears the day slots and progress pointer. Completion status and
// stored proofs are left untouched.
func (s *ChallengeService) Reset(userID, challengeID uuid.UUID) ([]bool, error) {
	result := s.db.Model(&models.Challenge{}).
		Where("id = ? AND user_id = ?", challengeID, userID).
		Updates(map[string]interface{}{
			"days":        models.NewDays(),
			"current_day": 0,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to reset challenge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrChallengeNotFound
	}

	return make([]bool, models.ChallengeDays), nil
}

// Complete marks the challenge done. Completion is an explicit action and
// is never derived from the days array.
func (s *ChallengeService) Complete(userID, challengeID uuid.UUID) error {
	result := s.db.Model(&models.Challenge{}).
		Where("id = ? AND user_id = ?", challengeID, userID).
		UpdateColumn("is_complete", true)
	if result.Error != nil {
		return fmt.Errorf("failed to complete challenge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrChallengeNotFound
	}

	return nil
}

// GetProof returns the earliest stored proof for the given day.
func (s *ChallengeService) GetProof(userID, challengeID uuid.UUID, dayIndex int) (*models.Proof, error) {
	if _, err := s.Get(userID, challengeID); err != nil {
		return nil, err
	}

	var proof models.Proof
	err := s.db.Where("challenge_id = ? AND day_index = ?", challengeID, dayIndex).
		Order("uploaded_at ASC").
		First(&proof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProofNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load proof: %w", err)
	}

	return &proof, nil
}

// Delete removes the challenge and all its proofs.
func (s *ChallengeService) Delete(userID, challengeID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", challengeID, userID).Delete(&models.Challenge{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete challenge: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrChallengeNotFound
		}
		return tx.Where("challenge_id = ?", challengeID).Delete(&models.Proof{}).Error
	})
}
