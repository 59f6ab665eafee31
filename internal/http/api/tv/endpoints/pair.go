package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/tv/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/redis"
)

// PairingRegistry stores the codes unpaired screens display.
type PairingRegistry interface {
	Register(ctx context.Context, code, deviceID string) error
}

type PairingController struct {
	store   db.Store
	pairing PairingRegistry
}

// PairingModule mounts the endpoints a screen calls before it is paired.
func PairingModule(store db.Store, pairing PairingRegistry) api.Module {
	ctl := &PairingController{store: store, pairing: pairing}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/register", ctl.registerPairingCode)
	})
}

// POST /api/tv/register
// registerPairingCode checks that the screen isn't already paired and
// stores the pairing code in Redis until an operator redeems it.
func (p *PairingController) registerPairingCode(ctx *gin.Context) (any, *api.Error) {
	var request packets.RegisterPairingCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	isPaired, err := p.store.IsDevicePaired(ctx, request.DeviceID)
	if err != nil {
		log.Error().Err(err).Str("deviceID", request.DeviceID).Msg("failed to check pairing state")
		return nil, api.Internal("could not check pairing state")
	}
	if isPaired {
		log.Warn().Str("deviceID", request.DeviceID).Msg("screen is already paired")
		return nil, &api.Error{Code: http.StatusConflict, Message: "screen is already paired"}
	}

	if err := p.pairing.Register(ctx, request.PairingCode, request.DeviceID); err != nil {
		return nil, api.Internal("could not store pairing code")
	}

	return packets.RegisterPairingCodeResponse{
		DeviceID:  request.DeviceID,
		ExpiresIn: int(redis.PairingTTL.Seconds()),
	}, nil
}
