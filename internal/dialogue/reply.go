package dialogue

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// minReplyLength below which a model reply is treated as implausible.
const minReplyLength = 5

// ReplyKind tags what the model call boundary actually produced.
type ReplyKind int

const (
	// ReplyPlainText is a valid free-text reply.
	ReplyPlainText ReplyKind = iota
	// ReplyStructured is a valid adaptive-UI JSON reply.
	ReplyStructured
	// ReplyMalformed failed validation and must route to fallback.
	ReplyMalformed
)

// StructuredReply is the adaptive-UI contract the model is asked to return.
type StructuredReply struct {
	ReplyText        string `json:"reply_text"`
	UIHexColor       string `json:"ui_hex_color"`
	Animation        string `json:"animation"`
	ActionSuggestion string `json:"action_suggestion"`
}

// Reply is the tagged result of parsing a model response.
type Reply struct {
	Kind       ReplyKind
	Text       string
	Structured StructuredReply
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParsePlainReply validates a free-text model response.
func ParsePlainReply(raw string) Reply {
	text := strings.TrimSpace(raw)
	if len(text) < minReplyLength {
		return Reply{Kind: ReplyMalformed}
	}
	return Reply{Kind: ReplyPlainText, Text: text}
}

// ParseStructuredReply validates the JSON adaptive-UI response. Any schema
// violation yields a malformed reply; nothing is coerced.
func ParseStructuredReply(raw string) Reply {
	text := strings.TrimSpace(raw)
	// Models sometimes wrap JSON in a markdown fence despite instructions.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var sr StructuredReply
	if err := json.Unmarshal([]byte(text), &sr); err != nil {
		return Reply{Kind: ReplyMalformed}
	}
	if len(strings.TrimSpace(sr.ReplyText)) < minReplyLength {
		return Reply{Kind: ReplyMalformed}
	}
	if !hexColorPattern.MatchString(sr.UIHexColor) {
		return Reply{Kind: ReplyMalformed}
	}
	if !domain.ValidAnimation(sr.Animation) {
		return Reply{Kind: ReplyMalformed}
	}
	sr.ReplyText = strings.TrimSpace(sr.ReplyText)
	return Reply{Kind: ReplyStructured, Structured: sr}
}
