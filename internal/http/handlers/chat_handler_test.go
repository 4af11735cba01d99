// README: HTTP handler tests for the chat endpoints.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/http/handlers"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/nlu"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/dialogue"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := dialogue.NewEngine(dialogue.Config{
		Sessions:      session.NewMemoryStore(session.GoalFullTrip),
		NLU:           nlu.NewClassifier(),
		Flights:       flights.NewService(flights.NewMemoryCache()),
		Hotels:        hotels.NewService(hotels.NewMemoryCache()),
		Weather:       weather.NewService("", nil),
		SearchTimeout: time.Second,
	})

	r := gin.New()
	h := handlers.NewChatHandler(engine)
	r.POST("/api/chat", h.Chat)
	r.POST("/api/chat/reset", h.Reset)
	r.GET("/api/health", handlers.Health)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type chatRespBody struct {
	Success  bool `json:"success"`
	Response struct {
		Type        string   `json:"type"`
		Message     string   `json:"message"`
		Suggestions []string `json:"suggestions"`
	} `json:"response"`
}

func TestChat_HappyPath(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodPost, "/api/chat", map[string]string{
		"message": "Hallo",
		"user_id": "u1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body chatRespBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Fatal("success = false")
	}
	if body.Response.Type != "greeting" {
		t.Fatalf("response type = %q, want greeting", body.Response.Type)
	}
	if body.Response.Message == "" {
		t.Fatal("empty response message")
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodPost, "/api/chat", map[string]string{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChat_InvalidJSONRejected(t *testing.T) {
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChat_ResetEndpoint(t *testing.T) {
	r := buildTestRouter()

	doRequest(r, http.MethodPost, "/api/chat", map[string]string{"message": "Berlin", "user_id": "u1"})

	w := doRequest(r, http.MethodPost, "/api/chat/reset", map[string]string{"user_id": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body chatRespBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Response.Type != "session_reset" {
		t.Fatalf("response type = %q, want session_reset", body.Response.Type)
	}
}

func TestHealth(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("status field = %q, want healthy", body["status"])
	}
}
