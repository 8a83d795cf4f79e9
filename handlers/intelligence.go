package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wanderlust/models"
	"wanderlust/services/planner"
	"wanderlust/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the trip planner conversation over HTTP.
type ChatHandler struct {
	Planner planner.PlannerService
	Timeout time.Duration
}

func NewChatHandler(svc planner.PlannerService, timeout time.Duration) *ChatHandler {
	return &ChatHandler{Planner: svc, Timeout: timeout}
}

func (h *ChatHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// CreateSessionHandler opens a new conversation.
func (h *ChatHandler) CreateSessionHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.Planner.CreateSession(ctx)
	if err != nil {
		h.fail(c, "Failed to create session", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSessionHandler returns the stored session, transcript included.
func (h *ChatHandler) GetSessionHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	sess, err := h.Planner.GetSession(ctx, c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to load session", err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SendMessageHandler runs one turn with the user's text.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Error("Invalid chat message request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.Planner.HandleMessage(ctx, c.Param("sessionID"), req.Text)
	if err != nil {
		h.fail(c, "Failed to process message", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartHandler is the start button.
func (h *ChatHandler) StartHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.Planner.Start(ctx, c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to start session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RestartHandler is the start-over button.
func (h *ChatHandler) RestartHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.Planner.Restart(ctx, c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to restart session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) DeleteSessionHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.Planner.DeleteSession(ctx, c.Param("sessionID")); err != nil {
		h.fail(c, "Failed to delete session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) fail(c *gin.Context, message string, err error) {
	var perr *planner.PlannerError
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
	case errors.As(err, &perr):
		utils.JSONError(c, http.StatusBadRequest, message, perr.Message)
	default:
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
