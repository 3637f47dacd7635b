package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/http/api"
	"github.com/puic/quickxs-server/internal/http/api/dashboard/packets"
	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/notify"
	"github.com/puic/quickxs-server/internal/projector"
	"github.com/puic/quickxs-server/internal/redis"
	"github.com/puic/quickxs-server/internal/snapshot"
	"github.com/puic/quickxs-server/internal/timeutil"
	"github.com/puic/quickxs-server/internal/widget"
)

type DashboardController struct {
	source *snapshot.Source
	store  db.Store
	clock  notify.Clock
}

func NewDashboardController(source *snapshot.Source, store db.Store, clock notify.Clock) *DashboardController {
	if clock == nil {
		clock = notify.SystemClock
	}
	return &DashboardController{source: source, store: store, clock: clock}
}

// DashboardModule mounts the read-only projection endpoints consumed by
// the PWA and the Android shell. No auth: the data is the student's own
// timetable, served on the local network.
func DashboardModule(source *snapshot.Source, store db.Store, clock notify.Clock) api.Module {
	ctl := NewDashboardController(source, store, clock)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/today", ctl.getToday)
		c.PUBLIC_GET("/projection", ctl.getProjection)
		c.PUBLIC_GET("/free-periods", ctl.getFreePeriods)
		c.PUBLIC_GET("/events/upcoming", ctl.getUpcomingEvents)
		c.PUBLIC_GET("/links", ctl.getLinks)
		c.PUBLIC_GET("/widget-data", ctl.getWidgetData)
	})
}

// GET /api/dashboard/today
func (d *DashboardController) getToday(ctx *gin.Context) (any, *api.APIError) {
	now := d.clock.Now()
	routines := d.source.Routines(ctx.Request.Context())

	classes := projector.TodayClasses(routines, now)
	completed := 0
	for _, c := range classes {
		if c.IsCompleted {
			completed++
		}
	}
	progress := model.DailyProgress{Completed: completed, Total: len(classes)}
	if progress.Total > 0 {
		progress.Percentage = completed * 100 / progress.Total
	}

	return packets.TodayResponse{
		Date:        timeutil.DateString(now),
		Day:         timeutil.DayName(now),
		Classes:     classes,
		FreePeriods: projector.FreePeriods(routines, now),
		Progress:    progress,
	}, nil
}

// GET /api/dashboard/projection
func (d *DashboardController) getProjection(ctx *gin.Context) (any, *api.APIError) {
	rctx := ctx.Request.Context()
	p := projector.Project(d.source.Routines(rctx), d.source.Events(rctx), d.clock.Now())
	return p, nil
}

// GET /api/dashboard/free-periods
func (d *DashboardController) getFreePeriods(ctx *gin.Context) (any, *api.APIError) {
	routines := d.source.Routines(ctx.Request.Context())
	gaps := projector.FreePeriods(routines, d.clock.Now())
	if gaps == nil {
		gaps = []model.FreePeriod{}
	}
	return gaps, nil
}

// GET /api/dashboard/events/upcoming?limit=N
func (d *DashboardController) getUpcomingEvents(ctx *gin.Context) (any, *api.APIError) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid limit"}
		}
		limit = parsed
	}

	events := d.source.Events(ctx.Request.Context())
	return projector.UpcomingEvents(events, d.clock.Now(), limit), nil
}

// GET /api/dashboard/links
func (d *DashboardController) getLinks(ctx *gin.Context) (any, *api.APIError) {
	links, err := d.store.ListLinks()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list links"}
	}
	return links, nil
}

// GET /api/dashboard/widget-data
// Serves the latest published snapshot when one exists, otherwise builds
// one on the fly.
func (d *DashboardController) getWidgetData(ctx *gin.Context) (any, *api.APIError) {
	rctx := ctx.Request.Context()

	var cached model.WidgetData
	if redis.GetJSON(rctx, redis.KeyWidgetData, &cached) {
		return cached, nil
	}

	data := widget.Build(d.source.Routines(rctx), d.source.Events(rctx), d.clock.Now())
	return data, nil
}
