package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/http/api"
	"github.com/puic/quickxs-server/internal/http/api/admin/packets"
	"github.com/puic/quickxs-server/internal/model"
)

type SettingsController struct {
	store    db.Store
	onChange func()
}

func NewSettingsController(store db.Store, onChange func()) *SettingsController {
	return &SettingsController{store: store, onChange: onChange}
}

func SettingsModule(store db.Store, onChange func()) api.Module {
	ctl := NewSettingsController(store, onChange)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings/notifications", ctl.getSettings)
		c.PUT("/settings/notifications", ctl.updateSettings)
	})
}

func settingsResponse(s model.NotificationSettings) packets.SettingsResponse {
	return packets.SettingsResponse{
		Enabled: s.Enabled,
		Timings: []int64(s.Timings),
		Sound:   s.Sound,
		Vibrate: s.Vibrate,
	}
}

// GET /api/admin/settings/notifications
func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetNotificationSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load settings"}
	}
	return settingsResponse(settings), nil
}

// PUT /api/admin/settings/notifications
func (s *SettingsController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	for _, lead := range request.Timings {
		if lead <= 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "timings must be positive lead minutes"}
		}
	}

	settings := model.NotificationSettings{
		UserID:  user.ID,
		Enabled: request.Enabled,
		Timings: pq.Int64Array(request.Timings),
		Sound:   request.Sound,
		Vibrate: request.Vibrate,
	}
	if err := s.store.SaveNotificationSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	if s.onChange != nil {
		s.onChange()
	}
	return settingsResponse(settings), nil
}
