package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/just3days/backend/internal/auth"
	"github.com/just3days/backend/internal/dto"
	"github.com/just3days/backend/internal/models"
	"github.com/just3days/backend/internal/services"
)

// ChallengeService is the challenge-store surface the handler needs.
type ChallengeService interface {
	Create(userID uuid.UUID, title, category, plan string) (*models.Challenge, error)
	List(userID uuid.UUID, isComplete *bool) ([]models.Challenge, error)
	Get(userID, challengeID uuid.UUID) (*models.Challenge, error)
	UploadProof(userID, challengeID uuid.UUID, dayIndex int, imageBase64 string) ([]bool, bool, error)
	Reset(userID, challengeID uuid.UUID) ([]bool, error)
	Complete(userID, challengeID uuid.UUID) error
	GetProof(userID, challengeID uuid.UUID, dayIndex int) (*models.Proof, error)
	Delete(userID, challengeID uuid.UUID) error
}

type ChallengeHandler struct {
	challengeService ChallengeService
}

func NewChallengeHandler(challengeService ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// Create handles POST /challenges.
func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Title == "" || req.Category == "" || req.Plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing fields"})
	}

	challenge, err := h.challengeService.Create(userID, req.Title, req.Category, req.Plan)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to create challenge"})
	}

	return c.Status(fiber.StatusCreated).JSON(toChallengeResponse(challenge))
}

// List handles GET /challenges?isComplete=true|false.
func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	var filter *bool
	if raw := c.Query("isComplete"); raw != "" {
		v := raw == "true"
		filter = &v
	}

	challenges, err := h.challengeService.List(userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to list challenges"})
	}

	responses := make([]dto.ChallengeResponse, len(challenges))
	for i := range challenges {
		responses[i] = toChallengeResponse(&challenges[i])
	}

	return c.JSON(dto.ChallengeListResponse{Challenges: responses})
}

// Get handles GET /challenges/:id.
func (h *ChallengeHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	challenge, err := h.challengeService.Get(userID, challengeID)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to load challenge"})
	}

	return c.JSON(toChallengeResponse(challenge))
}

// UploadProof handles POST /challenges/:id/proof.
func (h *ChallengeHandler) UploadProof(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	var req dto.UploadProofRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.DayIndex == nil || req.ImageBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing fields"})
	}

	days, isCompleted, err := h.challengeService.UploadProof(userID, challengeID, *req.DayIndex, req.ImageBase64)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDayIndex):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrChallengeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to upload proof"})
		}
	}

	return c.JSON(dto.UploadProofResponse{Days: days, IsCompleted: isCompleted})
}

// Reset handles POST /challenges/:id/reset.
func (h *ChallengeHandler) Reset(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	days, err := h.challengeService.Reset(userID, challengeID)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to reset challenge"})
	}

	return c.JSON(dto.ResetResponse{Days: days})
}

// Complete handles POST /challenges/:id/complete.
func (h *ChallengeHandler) Complete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	if err := h.challengeService.Complete(userID, challengeID); err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to complete challenge"})
	}

	return c.JSON(dto.CompleteResponse{IsComplete: true})
}

// GetProof handles GET /challenges/:id/proof/:dayIndex.
func (h *ChallengeHandler) GetProof(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	dayIndex, err := c.ParamsInt("dayIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid day index"})
	}

	proof, err := h.challengeService.GetProof(userID, challengeID, dayIndex)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound), errors.Is(err, services.ErrProofNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to load proof"})
		}
	}

	return c.JSON(dto.ProofResponse{
		DayIndex:    proof.DayIndex,
		ImageBase64: proof.ImageBase64,
		UploadedAt:  proof.UploadedAt,
	})
}

// Delete handles DELETE /challenges/:id.
func (h *ChallengeHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid challenge ID"})
	}

	if err := h.challengeService.Delete(userID, challengeID); err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to delete challenge"})
	}

	return c.JSON(dto.MessageResponse{Message: "Challenge deleted successfully"})
}

func toChallengeResponse(challenge *models.Challenge) dto.ChallengeResponse {
	days := make([]bool, models.ChallengeDays)
	copy(days, challenge.Days)

	return dto.ChallengeResponse{
		ChallengeID: challenge.ID.String(),
		Title:       challenge.Title,
		Category:    challenge.Category,
		Plan:        challenge.Plan,
		Days:        days,
		CurrentDay:  challenge.CurrentDay,
		IsComplete:  challenge.IsComplete,
		CreatedAt:   challenge.CreatedAt,
	}
}
