package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/just3days/backend/internal/config"
	"github.com/just3days/backend/internal/dto"
	"github.com/just3days/backend/internal/handlers"
	"github.com/just3days/backend/internal/models"
	"github.com/just3days/backend/internal/routes"
)

const testSecret = "test-secret"

func newTestApp(authSvc handlers.AuthService, challengeSvc handlers.ChallengeService) *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret, JWTExpiry: time.Hour}

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authSvc),
		handlers.NewChallengeHandler(challengeSvc),
		handlers.NewHealthHandler(nil),
	)
	return app
}

func signTestToken(t *testing.T, userID uuid.UUID, validity time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": "a@x.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(validity).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// --- service stubs ---

type stubAuthService struct {
	signupErr   error
	token       string
	loginErr    error
	profile     *dto.ProfileResponse
	profileErr  error
	nicknameErr error

	gotNickname string
	gotEmail    string
}

func (s *stubAuthService) Signup(nickname, email, pw string) (*models.User, error) {
	s.gotNickname, s.gotEmail = nickname, email
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &models.User{ID: uuid.New(), Nickname: nickname, Email: email}, nil
}

func (s *stubAuthService) Login(email, pw string) (string, error) {
	s.gotEmail = email
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubAuthService) GetProfile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func (s *stubAuthService) UpdateNickname(userID uuid.UUID, nickname string) error {
	s.gotNickname = nickname
	return s.nicknameErr
}

type stubChallengeService struct {
	challenge *models.Challenge
	createErr error

	list      []models.Challenge
	listErr   error
	gotFilter *bool

	getErr error

	uploadDays  []bool
	wasComplete bool
	uploadErr   error
	gotDayIndex int

	resetDays []bool
	resetErr  error

	completeErr error

	proof    *models.Proof
	proofErr error

	deleteErr error
}

func (s *stubChallengeService) Create(userID uuid.UUID, title, category, plan string) (*models.Challenge, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.challenge, nil
}

func (s *stubChallengeService) List(userID uuid.UUID, isComplete *bool) ([]models.Challenge, error) {
	s.gotFilter = isComplete
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *stubChallengeService) Get(userID, challengeID uuid.UUID) (*models.Challenge, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.challenge, nil
}

func (s *stubChallengeService) UploadProof(userID, challengeID uuid.UUID, dayIndex int, imageBase64 string) ([]bool, bool, error) {
	s.gotDayIndex = dayIndex
	if s.uploadErr != nil {
		return nil, false, s.uploadErr
	}
	return s.uploadDays, s.wasComplete, nil
}

func (s *stubChallengeService) Reset(userID, challengeID uuid.UUID) ([]bool, error) {
	if s.resetErr != nil {
		return nil, s.resetErr
	}
	return s.resetDays, nil
}

func (s *stubChallengeService) Complete(userID, challengeID uuid.UUID) error {
	return s.completeErr
}

func (s *stubChallengeService) GetProof(userID, challengeID uuid.UUID, dayIndex int) (*models.Proof, error) {
	if s.proofErr != nil {
		return nil, s.proofErr
	}
	return s.proof, nil
}

func (s *stubChallengeService) Delete(userID, challengeID uuid.UUID) error {
	return s.deleteErr
}
