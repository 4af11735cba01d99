// README: Chat handler; bridges HTTP requests to the dialogue engine.
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/dialogue"
)

type ChatHandler struct {
	engine *dialogue.Engine
}

func NewChatHandler(engine *dialogue.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResp struct {
	Success  bool              `json:"success"`
	Response dialogue.Response `json:"response"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "empty message")
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	log.Printf("http: message from user %s: %s", req.UserID, req.Message)

	resp := h.engine.ProcessMessage(c.Request.Context(), req.Message, req.UserID)
	writeJSON(c, http.StatusOK, chatResp{Success: true, Response: resp})
}

type resetReq struct {
	UserID string `json:"user_id"`
}

// Reset handles POST /api/chat/reset.
func (h *ChatHandler) Reset(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	resp := h.engine.ResetSession(c.Request.Context(), req.UserID)
	writeJSON(c, http.StatusOK, chatResp{Success: true, Response: resp})
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
