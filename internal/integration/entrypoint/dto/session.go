package dto

// CreateSessionRequest represents the passcode exchange request body.
type CreateSessionRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// SessionResponse carries the issued bearer token.
type SessionResponse struct {
	Token string `json:"token"`
}
