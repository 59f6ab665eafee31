package endpoints

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/middleware"
)

// POST /api/admin/screens/:id/calendar
// exportCalendar renders a month of times for the screen and publishes it
// to the export storage.
func (t *ScreenController) exportCalendar(ctx *gin.Context, operator *middleware.Operator) (any, *api.Error) {
	screen, apiErr := t.screenFromPath(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ExportCalendarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Format == "" {
		request.Format = "json"
	}

	cal, err := athan.MonthCalendar(screen, request.Year, time.Month(request.Month))
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}

	var (
		body        []byte
		contentType string
	)
	switch request.Format {
	case "csv":
		body, err = cal.CSV()
		contentType = "text/csv; charset=utf-8"
	default:
		body, err = cal.JSON()
		contentType = "application/json"
	}
	if err != nil {
		log.Error().Err(err).Int("screen_id", screen.ID).Msg("failed to encode calendar")
		return nil, api.Internal("could not encode calendar")
	}

	filename := fmt.Sprintf("%s %s.%s", screen.Name, cal.Month, request.Format)
	url, err := t.exports.Save(ctx, filename, contentType, body)
	if err != nil {
		return nil, api.Internal("could not store calendar")
	}

	log.Info().Int("screen_id", screen.ID).Str("url", url).Str("operator", operator.Email).Msg("calendar exported")
	return packets.ExportCalendarResponse{Month: cal.Month, Format: request.Format, URL: url}, nil
}
