package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/http/api"
	"github.com/puic/quickxs-server/internal/http/api/admin/packets"
	"github.com/puic/quickxs-server/internal/model"
)

type LinkController struct {
	store db.Store
}

func NewLinkController(store db.Store) *LinkController {
	return &LinkController{store: store}
}

func LinkModule(store db.Store) api.Module {
	ctl := NewLinkController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/links", ctl.listLinks)
		c.POST("/links", ctl.createLink)
		c.PUT("/links/:id", ctl.updateLink)
		c.DELETE("/links/:id", ctl.deleteLink)
	})
}

func linkResponse(l model.Link) packets.LinkResponse {
	return packets.LinkResponse{
		ID:       l.ID,
		Name:     l.Name,
		URL:      l.URL,
		Category: l.Category,
	}
}

// GET /api/admin/links
func (l *LinkController) listLinks(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := l.store.ListLinks()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list links"}
	}

	out := make([]packets.LinkResponse, 0, len(all))
	for _, link := range all {
		out = append(out, linkResponse(link))
	}
	return out, nil
}

// POST /api/admin/links
func (l *LinkController) createLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateLinkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	link, err := l.store.CreateLink(request.Name, request.URL, request.Category)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create link"}
	}
	return linkResponse(link), nil
}

// PUT /api/admin/links/:id
func (l *LinkController) updateLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateLinkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := l.store.GetLinkByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "link not found"}
	}

	if err := l.store.UpdateLink(id, request.Name, request.URL, request.Category); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update link"}
	}

	link, err := l.store.GetLinkByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated link"}
	}
	return linkResponse(link), nil
}

// DELETE /api/admin/links/:id
func (l *LinkController) deleteLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := l.store.GetLinkByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "link not found"}
	}

	if err := l.store.DeleteLink(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete link"}
	}
	return gin.H{"message": "deleted"}, nil
}
