package models

// TokenRequest is the body of POST /validateToken.
type TokenRequest struct {
	Token string `json:"token"`
}

// ValidateResult is the outcome of asking the backend whether a session
// token is still valid. A zero value means "not valid".
type ValidateResult struct {
	// Valid reports whether the backend accepted the token.
	Valid bool `json:"valid"`

	// Message is an optional human-readable explanation from the backend.
	Message string `json:"message,omitempty"`
}
