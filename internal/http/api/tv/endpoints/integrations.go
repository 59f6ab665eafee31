package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api/tv/packets"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

// IntegrationsModule serves the HTML pages screens load.
func IntegrationsModule() api.Module {
	ctl := &IntegrationsController{now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW_GET("/integrations/:name", ctl.serveIntegration)
	})
}

type IntegrationsController struct {
	now func() time.Time
}

func (i *IntegrationsController) serveIntegration(ctx *gin.Context) {
	name := ctx.Param("name")
	switch name {
	case "athan":
		i.serveAthan(ctx)
	default:
		ctx.String(http.StatusNotFound, "integration not found")
	}
}

func (i *IntegrationsController) serveAthan(ctx *gin.Context) {
	var query packets.AthanQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	method, err := prayer.ParseMethod(query.Method)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	date := athan.LocalDate(i.now(), query.Tz)
	if query.Date != "" {
		if date, err = prayer.ParseDate(query.Date); err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	loc := prayer.Location{Latitude: *query.Latitude, Longitude: *query.Longitude}
	day, err := prayer.ComputeDay(loc, date, query.Tz, method)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	ctx.HTML(http.StatusOK, "athan.html", athan.PageData(query.City, day, method))
}
