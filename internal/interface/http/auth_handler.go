package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/navstation/navstation/internal/application"
	"github.com/navstation/navstation/pkg/apperrors"
	"github.com/navstation/navstation/pkg/response"
)

// AuthHandler serves the public credential endpoints.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// writeError maps an application error onto the wire: tagged kinds keep their
// message and status, anything untyped becomes a generic 500. Raw store or
// crypto detail never reaches the client.
func writeError(c *gin.Context, err error, fallback string) {
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		response.Fail(c, apperrors.HTTPStatus(ae.Kind), ae.Message)
		return
	}
	response.Fail(c, http.StatusInternalServerError, fallback)
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, application.MsgEmptyCredentials)
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err, application.MsgRegisterFailed)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": application.MsgRegisterOK,
		"userId":  u.ID,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, application.MsgEmptyCredentials)
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err, application.MsgLoginFailed)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"token": token})
}
