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

var validDays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

type RoutineController struct {
	store    db.Store
	onChange func()
}

func NewRoutineController(store db.Store, onChange func()) *RoutineController {
	return &RoutineController{store: store, onChange: onChange}
}

// RoutineModule mounts the weekly routine CRUD. onChange runs after every
// mutation so the planner and widget feed pick up the new table.
func RoutineModule(store db.Store, onChange func()) api.Module {
	ctl := NewRoutineController(store, onChange)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/routines", ctl.listRoutines)
		c.POST("/routines", ctl.createRoutine)
		c.GET("/routines/:id", ctl.getRoutine)
		c.PUT("/routines/:id", ctl.updateRoutine)
		c.DELETE("/routines/:id", ctl.deleteRoutine)
	})
}

func (r *RoutineController) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}

func routineResponse(e model.RoutineEntry) packets.RoutineResponse {
	return packets.RoutineResponse{
		ID:        e.ID,
		Day:       e.Day,
		Time:      e.Time,
		Subject:   e.Subject,
		Teacher:   e.Teacher,
		Classroom: e.Classroom,
		Duration:  e.Duration,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/admin/routines
func (r *RoutineController) listRoutines(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := r.store.ListRoutines()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list routines"}
	}

	out := make([]packets.RoutineResponse, 0, len(all))
	for _, e := range all {
		out = append(out, routineResponse(e))
	}
	return out, nil
}

// POST /api/admin/routines
func (r *RoutineController) createRoutine(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateRoutineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !validDays[request.Day] {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid day"}
	}
	if _, err := timeutil.TimeToMinutes(request.Time); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid time, expected HH:MM"}
	}

	duration := model.DefaultRoutineDuration
	if request.Duration != nil && *request.Duration > 0 {
		duration = *request.Duration
	}

	entry, err := r.store.CreateRoutine(request.Day, request.Time, request.Subject, request.Teacher, request.Classroom, duration)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create routine"}
	}

	r.changed()
	return routineResponse(entry), nil
}

// GET /api/admin/routines/:id
func (r *RoutineController) getRoutine(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	entry, err := r.store.GetRoutineByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "routine not found"}
	}
	return routineResponse(entry), nil
}

// PUT /api/admin/routines/:id
func (r *RoutineController) updateRoutine(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateRoutineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Day != nil && !validDays[*request.Day] {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid day"}
	}
	if request.Time != nil {
		if _, err := timeutil.TimeToMinutes(*request.Time); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid time, expected HH:MM"}
		}
	}

	if _, err := r.store.GetRoutineByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "routine not found"}
	}

	if err := r.store.UpdateRoutine(id, request.Day, request.Time, request.Subject, request.Teacher, request.Classroom, request.Duration); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update routine"}
	}

	entry, err := r.store.GetRoutineByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated routine"}
	}

	r.changed()
	return routineResponse(entry), nil
}

// DELETE /api/admin/routines/:id
func (r *RoutineController) deleteRoutine(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := r.store.GetRoutineByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "routine not found"}
	}

	if err := r.store.DeleteRoutine(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete routine"}
	}

	r.changed()
	return gin.H{"message": "deleted"}, nil
}
