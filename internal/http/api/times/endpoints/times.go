package endpoints

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/times/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

// ServiceModule mounts the service banner and health check at the root.
func ServiceModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/", serviceInfo)
		c.PUBLIC_GET("/health", health)
	})
}

// TimesModule mounts the public prayer time endpoints.
func TimesModule() api.Module {
	ctl := newTimesController(time.Now)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/timesForGPS", ctl.timesForGPS)
		c.PUBLIC_GET("/calendarForGPS", ctl.calendarForGPS)
	})
}

type TimesController struct {
	now func() time.Time
}

func newTimesController(now func() time.Time) *TimesController {
	return &TimesController{now: now}
}

// GET /
func serviceInfo(ctx *gin.Context) (any, *api.Error) {
	return packets.ServiceResponse{
		Service:  "Vakit API",
		Docs:     "/docs",
		Endpoint: "/api/timesForGPS",
	}, nil
}

// GET /health
func health(ctx *gin.Context) (any, *api.Error) {
	return packets.HealthResponse{Status: "ok"}, nil
}

// GET /api/timesForGPS
func (t *TimesController) timesForGPS(ctx *gin.Context) (any, *api.Error) {
	days, apiErr := t.compute(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return athan.TimesOf(days[0]), nil
}

// GET /api/calendarForGPS
func (t *TimesController) calendarForGPS(ctx *gin.Context) (any, *api.Error) {
	days, apiErr := t.compute(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	out := packets.CalendarResponse{Days: make([]packets.CalendarDay, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, packets.CalendarDay{Date: d.Date.String(), Times: athan.TimesOf(d)})
	}
	return out, nil
}

func (t *TimesController) compute(ctx *gin.Context) ([]prayer.Day, *api.Error) {
	var query packets.TimesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	method, err := prayer.ParseMethod(query.CalculationMethod)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}

	offset := query.UTCOffsetMinutes()
	start := athan.LocalDate(t.now(), offset)
	if query.Date != "" {
		if start, err = prayer.ParseDate(query.Date); err != nil {
			return nil, api.BadRequest(err.Error())
		}
	}

	loc := prayer.Location{Latitude: *query.Latitude, Longitude: *query.Longitude}
	days, err := prayer.Compute(loc, start, query.Days, offset, method)
	if err != nil {
		if errors.Is(err, prayer.ErrInvalidDate) || errors.Is(err, prayer.ErrInvalidLocation) || errors.Is(err, prayer.ErrInvalidDayCount) ||
			errors.Is(err, prayer.ErrInvalidOffset) {
			return nil, api.BadRequest(err.Error())
		}
		log.Error().Err(err).Msg("prayer time computation failed")
		return nil, api.Internal("could not compute prayer times")
	}
	return days, nil
}
