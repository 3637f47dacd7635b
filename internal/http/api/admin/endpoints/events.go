package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/http/api"
	"github.com/puic/quickxs-server/internal/http/api/admin/packets"
	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/timeutil"
)

type EventController struct {
	store    db.Store
	onChange func()
}

func NewEventController(store db.Store, onChange func()) *EventController {
	return &EventController{store: store, onChange: onChange}
}

func EventModule(store db.Store, onChange func()) api.Module {
	ctl := NewEventController(store, onChange)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/events", ctl.listEvents)
		c.POST("/events", ctl.createEvent)
		c.GET("/events/:id", ctl.getEvent)
		c.PUT("/events/:id", ctl.updateEvent)
		c.POST("/events/:id/complete", ctl.completeEvent)
		c.DELETE("/events/:id", ctl.deleteEvent)
	})
}

func (e *EventController) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}

func eventResponse(ev model.EventEntry) packets.EventResponse {
	return packets.EventResponse{
		ID:          ev.ID,
		Date:        ev.Date,
		Time:        ev.Time,
		Name:        ev.Name,
		Info:        ev.Info,
		EventType:   ev.EventType,
		Priority:    ev.Priority,
		IsCompleted: ev.IsCompleted,
		CreatedAt:   ev.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ev.UpdatedAt.Format(time.RFC3339),
	}
}

func validEventDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// GET /api/admin/events
func (e *EventController) listEvents(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := e.store.ListEvents()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list events"}
	}

	out := make([]packets.EventResponse, 0, len(all))
	for _, ev := range all {
		out = append(out, eventResponse(ev))
	}
	return out, nil
}

// POST /api/admin/events
func (e *EventController) createEvent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !validEventDate(request.Date) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	}
	if _, err := timeutil.TimeToMinutes(request.Time); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid time, expected HH:MM"}
	}

	ev, err := e.store.CreateEvent(request.Date, request.Time, request.Name, request.Info, request.EventType, request.Priority)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create event"}
	}

	e.changed()
	return eventResponse(ev), nil
}

// GET /api/admin/events/:id
func (e *EventController) getEvent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	ev, err := e.store.GetEventByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "event not found"}
	}
	return eventResponse(ev), nil
}

// PUT /api/admin/events/:id
func (e *EventController) updateEvent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Date != nil && !validEventDate(*request.Date) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	}
	if request.Time != nil {
		if _, err := timeutil.TimeToMinutes(*request.Time); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid time, expected HH:MM"}
		}
	}

	if _, err := e.store.GetEventByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "event not found"}
	}

	if err := e.store.UpdateEvent(id, request.Date, request.Time, request.Name, request.Info, request.EventType, request.Priority); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update event"}
	}

	ev, err := e.store.GetEventByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated event"}
	}

	e.changed()
	return eventResponse(ev), nil
}

// POST /api/admin/events/:id/complete
func (e *EventController) completeEvent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	completed := true
	var request packets.CompleteEventRequest
	if err := ctx.ShouldBindJSON(&request); err == nil && request.Completed != nil {
		completed = *request.Completed
	}

	if _, err := e.store.GetEventByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "event not found"}
	}

	if err := e.store.SetEventCompleted(id, completed); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update event"}
	}

	ev, err := e.store.GetEventByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated event"}
	}

	e.changed()
	return eventResponse(ev), nil
}

// DELETE /api/admin/events/:id
func (e *EventController) deleteEvent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := e.store.GetEventByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "event not found"}
	}

	if err := e.store.DeleteEvent(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete event"}
	}

	e.changed()
	return gin.H{"message": "deleted"}, nil
}
