package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// chatRequest is the conversational endpoint payload. The emotion field
// carries the frontend's categorical visual reading when it has one.
type chatRequest struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message"`
	Emotion   string  `json:"emotion"`
	FaceSad   float64 `json:"face_sadness"`
	FaceStr   float64 `json:"face_stress"`
	FaceJoy   float64 `json:"face_joy"`
	Jitter    float64 `json:"voice_jitter"`
}

// Chat processes one user message and returns the therapist reply.
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "malformed request body")
	}
	if req.SessionID == "" || req.Message == "" {
		return errorResponse(c, http.StatusBadRequest, "session_id and message are required")
	}

	result, err := h.service.ProcessTurn(c.Request().Context(), req.SessionID, domain.SignalRecord{
		Text:          req.Message,
		FaceSadness:   req.FaceSad,
		FaceStress:    req.FaceStr,
		FaceJoy:       req.FaceJoy,
		VoiceJitter:   req.Jitter,
		VisualEmotion: domain.Emotion(req.Emotion),
	})
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	resp := map[string]interface{}{
		"success":         true,
		"response":        result.ReplyText,
		"emotion":         result.Emotion,
		"crisis_detected": result.CrisisDetected,
		"delivery":        result.Delivery,
		"turn":            result.Turn,
	}
	if result.Playbook != "" {
		resp["playbook"] = result.Playbook
	}
	if result.Fallback {
		resp["fallback"] = true
	}
	return c.JSON(http.StatusOK, resp)
}

// processRequest is the adaptive-UI endpoint payload. Silence is allowed.
type processRequest struct {
	SessionID string  `json:"session_id"`
	UserText  string  `json:"user_text"`
	FaceSad   float64 `json:"face_sadness"`
	FaceStr   float64 `json:"face_stress"`
	FaceJoy   float64 `json:"face_joy"`
	Jitter    float64 `json:"voice_jitter"`
}

// Process fuses the signal snapshot and returns reply text plus adaptive-UI
// instructions.
func (h *Handler) Process(c echo.Context) error {
	var req processRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "malformed request body")
	}

	result, err := h.service.ProcessAdaptive(c.Request().Context(), req.SessionID, domain.SignalRecord{
		Text:        req.UserText,
		FaceSadness: req.FaceSad,
		FaceStress:  req.FaceStr,
		FaceJoy:     req.FaceJoy,
		VoiceJitter: req.Jitter,
	})
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"detected_emotion": result.Emotion,
		"reply_text":       result.ReplyText,
		"suggested_action": result.ActionSuggestion,
		"ui_adaptation":    result.UI,
		"crisis_detected":  result.CrisisDetected,
	})
}
