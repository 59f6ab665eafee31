package endpoints

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/auth/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/middleware"
)

// Credentials identify the single operator account.
type Credentials struct {
	Email        string
	PasswordHash string // bcrypt
}

// AuthPublicModule mounts public auth endpoints (/auth/login)
func AuthPublicModule(jwtSecret string, creds Credentials) api.Module {
	ctl := newAccountManager(jwtSecret, creds)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.operatorLogin)
	})
}

// AuthSessionModule mounts private session endpoints (JWT required)
func AuthSessionModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", getCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	creds     Credentials
	now       func() time.Time
}

func newAccountManager(secret string, creds Credentials) *AccountManager {
	return &AccountManager{jwtSecret: secret, creds: creds, now: time.Now}
}

// POST /api/admin/auth/login
func (a *AccountManager) operatorLogin(ctx *gin.Context) (any, *api.Error) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	emailMatches := strings.EqualFold(strings.TrimSpace(request.Email), a.creds.Email)
	if !middleware.CheckPassword(a.creds.PasswordHash, request.Password) || !emailMatches {
		log.Warn().Str("email", request.Email).Msg("failed operator login")
		return nil, &api.Error{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(a.creds.Email, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Msg("could not sign operator token")
		return nil, api.Internal("could not generate token")
	}

	return packets.TokenResponse{
		Token:     token,
		ExpiresAt: a.now().Add(middleware.TokenTTL).UTC().Format(time.RFC3339),
	}, nil
}

// GET /api/admin/auth/current_profile
func getCurrentProfile(ctx *gin.Context, operator *middleware.Operator) (any, *api.Error) {
	return packets.ProfileResponse{Email: operator.Email}, nil
}
