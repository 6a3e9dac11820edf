package dto

type SignupRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"pw"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"pw"`
}

type LoginResponse struct {
	Token string `json:"jwttoken"`
}

type ProfileResponse struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

type NicknameRequest struct {
	Nickname string `json:"nickname"`
}

type NicknameResponse struct {
	Nickname string `json:"nickname"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
