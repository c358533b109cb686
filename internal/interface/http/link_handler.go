package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/navstation/navstation/internal/application"
	"github.com/navstation/navstation/internal/interface/middleware"
	"github.com/navstation/navstation/pkg/response"
)

const msgBadLinkID = "无效的链接ID"

// LinkHandler serves the owner-scoped bookmark endpoints. Identity comes from
// the access guard; no handler trusts ids from the request body.
type LinkHandler struct {
	Links  *application.LinkService
	Logger *logrus.Logger
}

func NewLinkHandler(links *application.LinkService, logger *logrus.Logger) *LinkHandler {
	return &LinkHandler{Links: links, Logger: logger}
}

type createLinkRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

// List handles GET /api/links.
func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.Links.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err, application.MsgListFailed)
		return
	}
	response.OK(c, http.StatusOK, links)
}

// Create handles POST /api/links.
func (h *LinkHandler) Create(c *gin.Context) {
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, application.MsgEmptyLinkFields)
		return
	}

	l, err := h.Links.Create(c.Request.Context(), middleware.UserID(c), req.Name, req.URL)
	if err != nil {
		writeError(c, err, application.MsgCreateFailed)
		return
	}
	response.OK(c, http.StatusOK, l)
}

// Delete handles DELETE /api/links/:id.
func (h *LinkHandler) Delete(c *gin.Context) {
	linkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || linkID <= 0 {
		response.Fail(c, http.StatusBadRequest, msgBadLinkID)
		return
	}

	if err := h.Links.Delete(c.Request.Context(), middleware.UserID(c), linkID); err != nil {
		writeError(c, err, application.MsgDeleteFailed)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": application.MsgDeleteOK})
}
