package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pranavshinde369/feelio/internal/adapter/llm"
	"github.com/pranavshinde369/feelio/internal/config"
	"github.com/pranavshinde369/feelio/internal/repository"
	"github.com/pranavshinde369/feelio/internal/safety"
	"github.com/pranavshinde369/feelio/internal/service"
	"github.com/pranavshinde369/feelio/internal/session"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	transcripts, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create transcript store: %v", err)
	}
	t.Cleanup(func() { _ = transcripts.Close() })

	screener, err := safety.NewScreener(context.Background(), safety.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create screener: %v", err)
	}

	svc := service.New(config.Load(), session.NewMemoryStore(), transcripts, llm.NewMockClient(), screener)
	return NewHandler(svc)
}

func postJSON(t *testing.T, h echo.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartSessionGeneratesID(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.StartSession, "/api/session/start", map[string]string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success   bool   `json:"success"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
}

func TestChatRequiresSessionAndMessage(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Chat, "/api/chat", map[string]string{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Chat, "/api/chat", map[string]string{"message": "hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatReturnsReply(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Chat, "/api/chat", map[string]interface{}{
		"session_id":  "s1",
		"message":     "work is too hard",
		"face_stress": 0.9,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success        bool   `json:"success"`
		Response       string `json:"response"`
		Emotion        string `json:"emotion"`
		CrisisDetected bool   `json:"crisis_detected"`
		Playbook       string `json:"playbook"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Response)
	assert.Equal(t, "stressed", resp.Emotion)
	assert.False(t, resp.CrisisDetected)
	assert.NotEmpty(t, resp.Playbook)
}

func TestChatCrisisPath(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Chat, "/api/chat", map[string]interface{}{
		"session_id": "s1",
		"message":    "I want to end my life",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CrisisDetected bool   `json:"crisis_detected"`
		Response       string `json:"response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.True(t, resp.CrisisDetected)
	assert.Contains(t, resp.Response, "safety matters")
}

func TestProcessAllowsSilence(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Process, "/api/process", map[string]interface{}{
		"face_joy": 0.8,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		DetectedEmotion string `json:"detected_emotion"`
		ReplyText       string `json:"reply_text"`
		UIAdaptation    struct {
			ThemeColor    string `json:"theme_color"`
			AnimationMode string `json:"animation_mode"`
		} `json:"ui_adaptation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.Equal(t, "joyful", resp.DetectedEmotion)
	assert.NotEmpty(t, resp.ReplyText)
	assert.NotEmpty(t, resp.UIAdaptation.ThemeColor)
}

func TestSummaryUnknownSession(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.SessionSummary, "/api/session/summary", map[string]string{"session_id": "ghost"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndSessionFlow(t *testing.T) {
	h := newTestHandler(t)

	postJSON(t, h.Chat, "/api/chat", map[string]interface{}{
		"session_id": "s1",
		"message":    "rough week at work",
	})

	rec := postJSON(t, h.EndSession, "/api/session/end", map[string]string{"session_id": "s1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Summary)

	// Ending again is benign.
	rec = postJSON(t, h.EndSession, "/api/session/end", map[string]string{"session_id": "s1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
