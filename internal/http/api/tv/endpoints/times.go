package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/tv/packets"
)

type ScreenTimesController struct {
	store db.Store
	now   func() time.Time
}

// ScreenTimesModule lets a paired screen pull today's times.
func ScreenTimesModule(store db.Store) api.Module {
	ctl := &ScreenTimesController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/times", ctl.deviceTimes)
	})
}

// GET /api/tv/times?device_id=
func (s *ScreenTimesController) deviceTimes(ctx *gin.Context) (any, *api.Error) {
	var query packets.DeviceTimesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	screen, err := s.store.GetScreenByDeviceID(ctx, query.DeviceID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, api.NotFound("unknown device")
	}
	if err != nil {
		log.Error().Err(err).Str("deviceID", query.DeviceID).Msg("failed to load screen")
		return nil, api.Internal("could not load screen")
	}
	if !screen.Paired {
		return nil, &api.Error{Code: http.StatusForbidden, Message: "screen is not paired"}
	}

	day, method, err := athan.ScreenDay(screen, s.now())
	if err != nil {
		log.Error().Err(err).Int("screenID", screen.ID).Msg("failed to compute screen times")
		return nil, api.Internal("could not compute prayer times")
	}

	return packets.DeviceTimesResponse{
		DeviceID: query.DeviceID,
		Date:     day.Date.String(),
		Method:   method.Name(),
		Times:    athan.TimesOf(day),
	}, nil
}
