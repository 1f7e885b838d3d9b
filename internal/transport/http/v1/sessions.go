package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pranavshinde369/feelio/internal/session"
)

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

// StartSession starts (or resumes) a session. A missing id gets a generated
// one.
func (h *Handler) StartSession(c echo.Context) error {
	var req sessionRequest
	// An empty body is allowed; the id is generated.
	_ = c.Bind(&req)

	st := h.service.StartSession(c.Request().Context(), req.SessionID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"session_id": st.ID,
		"message":    "Session started successfully",
	})
}

// SessionSummary returns the local turn-count/emotion overview.
func (h *Handler) SessionSummary(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return errorResponse(c, http.StatusBadRequest, "session_id is required")
	}

	digest, err := h.service.Digest(c.Request().Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return errorResponse(c, http.StatusBadRequest, "Invalid session_id")
		}
		return errorResponse(c, http.StatusInternalServerError, "failed to build summary")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"summary":    digest.Summary,
		"turn_count": digest.TurnCount,
		"emotions":   digest.Emotions,
	})
}

// EndSession terminates the session and returns the model-generated
// synopsis (or its fallback sentinel).
func (h *Handler) EndSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return errorResponse(c, http.StatusBadRequest, "session_id is required")
	}

	summary, err := h.service.EndSession(c.Request().Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			// Ending an unknown session is not an error for the client.
			return c.JSON(http.StatusOK, map[string]interface{}{
				"success": true,
				"message": "Session ended",
			})
		}
		return errorResponse(c, http.StatusInternalServerError, "failed to end session")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Session ended",
		"summary": summary,
	})
}
