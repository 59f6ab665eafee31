package packets

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type ProfileResponse struct {
	Email string `json:"email"`
}
