package dto

import "time"

type CreateChallengeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Plan     string `json:"plan"`
}

type ChallengeResponse struct {
	ChallengeID string    `json:"challengeId"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Plan        string    `json:"plan"`
	Days        []bool    `json:"days"`
	CurrentDay  int       `json:"currentDay"`
	IsComplete  bool      `json:"isComplete"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ChallengeListResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
}

type UploadProofRequest struct {
	DayIndex    *int   `json:"dayIndex"`
	ImageBase64 string `json:"imageBase64"`
}

// UploadProofResponse echoes the updated days array and the completion
// flag as it was before the upload; proofs never flip it.
type UploadProofResponse struct {
	Days        []bool `json:"days"`
	IsCompleted bool   `json:"isCompleted"`
}

type ResetResponse struct {
	Days []bool `json:"days"`
}

type CompleteResponse struct {
	IsComplete bool `json:"isComplete"`
}

type ProofResponse struct {
	DayIndex    int       `json:"dayIndex"`
	ImageBase64 string    `json:"imageBase64"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
