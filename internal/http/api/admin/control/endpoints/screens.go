package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/control/utils"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
	"github.com/Nixie-Tech-LLC/vakit/internal/redis"
	"github.com/Nixie-Tech-LLC/vakit/internal/storage"
)

// PairingRedeemer consumes the codes screens registered.
type PairingRedeemer interface {
	Redeem(ctx context.Context, code string) (string, error)
}

// ScreenPublisher pushes today's times to one screen.
type ScreenPublisher interface {
	PublishScreen(s model.Screen) error
}

type ScreenController struct {
	store     db.Store
	pairing   PairingRedeemer
	publisher ScreenPublisher
	exports   storage.Storage
	now       func() time.Time
}

func newScreenController(store db.Store, pairing PairingRedeemer, publisher ScreenPublisher, exports storage.Storage) *ScreenController {
	return &ScreenController{store: store, pairing: pairing, publisher: publisher, exports: exports, now: time.Now}
}

// ScreenModule mounts all authenticated /screens endpoints.
func ScreenModule(store db.Store, pairing PairingRedeemer, publisher ScreenPublisher, exports storage.Storage) api.Module {
	ctl := newScreenController(store, pairing, publisher, exports)
	return api.ModuleFunc(ctl.mount)
}

func (t *ScreenController) mount(c *api.Controller) {
	// CRUD
	c.GET("/screens", t.listScreens)
	c.POST("/screens", t.createScreen)
	c.GET("/screens/:id", t.getScreen)
	c.PUT("/screens/:id", t.updateScreen)
	c.DELETE("/screens/:id", t.deleteScreen)

	// pairing
	c.POST("/screens/pair", t.pairScreen)

	// athan
	c.GET("/screens/:id/athan", t.getAthanURL)
	c.POST("/screens/:id/broadcast", t.broadcastScreen)
	c.POST("/screens/:id/calendar", t.exportCalendar)
}

func screenResponse(s model.Screen) packets.ScreenResponse {
	return packets.ScreenResponse{
		ID:               s.ID,
		DeviceID:         s.DeviceID,
		Name:             s.Name,
		City:             s.City,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		UTCOffsetMinutes: s.UTCOffsetMinutes,
		Method:           s.Method,
		Paired:           s.Paired,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

// screenFromPath loads the screen named by the :id parameter.
func (t *ScreenController) screenFromPath(ctx *gin.Context) (model.Screen, *api.Error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id_raw", ctx.Param("id")).Msg("invalid screen id in URL")
		return model.Screen{}, api.BadRequest("invalid id")
	}

	screen, err := t.store.GetScreenByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return model.Screen{}, api.NotFound("screen not found")
	}
	if err != nil {
		return model.Screen{}, api.Internal("could not load screen")
	}
	return screen, nil
}

// GET /api/admin/screens
func (t *ScreenController) listScreens(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	all, err := t.store.ListScreens(ctx)
	if err != nil {
		return nil, api.Internal("could not list screens")
	}

	out := make([]packets.ScreenResponse, 0, len(all))
	for _, s := range all {
		out = append(out, screenResponse(s))
	}
	return out, nil
}

// POST /api/admin/screens
func (t *ScreenController) createScreen(ctx *gin.Context, operator *middleware.Operator) (any, *api.Error) {
	var request packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	method, err := prayer.ParseMethod(request.Method)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}

	screen, err := t.store.CreateScreen(ctx, model.Screen{
		Name:             request.Name,
		City:             request.City,
		Latitude:         *request.Latitude,
		Longitude:        *request.Longitude,
		UTCOffsetMinutes: request.UTCOffsetMinutes,
		Method:           method.Name(),
	})
	if err != nil {
		return nil, api.Internal("could not create screen")
	}

	log.Info().Int("screen_id", screen.ID).Str("operator", operator.Email).Msg("screen created")
	return screenResponse(screen), nil
}

// GET /api/admin/screens/:id
func (t *ScreenController) getScreen(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	screen, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return screenResponse(screen), nil
}

// PUT /api/admin/screens/:id
func (t *ScreenController) updateScreen(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	existing, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Error().Err(err).Msg("invalid JSON in update screen request")
		return nil, api.BadRequest(err.Error())
	}

	fields := db.ScreenFields{
		Name:             request.Name,
		City:             request.City,
		Latitude:         request.Latitude,
		Longitude:        request.Longitude,
		UTCOffsetMinutes: request.UTCOffsetMinutes,
	}
	if request.Method != nil {
		method, err := prayer.ParseMethod(*request.Method)
		if err != nil {
			return nil, api.BadRequest(err.Error())
		}
		name := method.Name()
		fields.Method = &name
	}

	updated, err := t.store.UpdateScreen(ctx, existing.ID, fields)
	if err != nil {
		log.Error().Err(err).Int("screen_id", existing.ID).Msg("database update failed for screen")
		return nil, api.Internal("could not update screen")
	}
	return screenResponse(updated), nil
}

// DELETE /api/admin/screens/:id
func (t *ScreenController) deleteScreen(ctx *gin.Context, operator *middleware.Operator) (any, *api.Error) {
	existing, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := t.store.DeleteScreen(ctx, existing.ID); err != nil {
		log.Error().Err(err).Int("screen_id", existing.ID).Msg("could not delete screen")
		return nil, api.Internal("could not delete screen")
	}

	log.Info().Int("screen_id", existing.ID).Str("operator", operator.Email).Msg("screen deleted")
	return packets.MessageResponse{Message: "screen deleted"}, nil
}

// POST /api/admin/screens/pair
func (t *ScreenController) pairScreen(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	var request packets.PairScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Error().Err(err).Str("route", ctx.FullPath()).Msg("invalid JSON in screen pairing request")
		return nil, api.BadRequest(err.Error())
	}

	if _, err := t.store.GetScreenByID(ctx, request.ScreenID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, api.NotFound("screen not found")
		}
		return nil, api.Internal("could not load screen")
	}

	deviceID, err := t.pairing.Redeem(ctx, request.PairingCode)
	if errors.Is(err, redis.ErrUnknownCode) {
		return nil, api.NotFound("unknown or expired pairing code")
	}
	if err != nil {
		log.Error().Err(err).Str("route", ctx.FullPath()).Msg("failed to redeem pairing code")
		return nil, api.Internal("could not redeem pairing code")
	}

	err = t.store.PairScreen(ctx, request.ScreenID, deviceID)
	if errors.Is(err, db.ErrDeviceTaken) {
		return nil, &api.Error{Code: http.StatusConflict, Message: err.Error()}
	}
	if err != nil {
		log.Error().Err(err).Int("screen_id", request.ScreenID).Str("device_id", deviceID).
			Msg("failed to mark screen as paired in database")
		return nil, api.Internal("could not update screen")
	}

	log.Info().Str("device_id", deviceID).Int("screen_id", request.ScreenID).Msg("successfully paired screen")

	paired, err := t.store.GetScreenByID(ctx, request.ScreenID)
	if err != nil {
		return nil, api.Internal("could not load screen")
	}
	return screenResponse(paired), nil
}

// GET /api/admin/screens/:id/athan
func (t *ScreenController) getAthanURL(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	screen, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var query packets.AthanURLQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	url, apiErr := utils.SetupAthan(utils.AthanConfigFor(screen, query.Date, t.now()))
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.IntegrationURLResponse{Name: "athan", URL: url}, nil
}

// POST /api/admin/screens/:id/broadcast
func (t *ScreenController) broadcastScreen(ctx *gin.Context, _ *middleware.Operator) (any, *api.Error) {
	screen, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if !screen.Paired || screen.DeviceID == nil {
		return nil, &api.Error{Code: http.StatusConflict, Message: "screen is not paired"}
	}

	if err := t.publisher.PublishScreen(screen); err != nil {
		log.Error().Err(err).Int("screen_id", screen.ID).Msg("failed to broadcast athan times")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "could not publish athan times"}
	}
	return packets.MessageResponse{Message: "athan times published"}, nil
}
