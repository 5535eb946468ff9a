package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Envelope is the canonical response shape every caller consumes, regardless
// of which of the backend's envelope variants actually came over the wire.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

const (
	msgNetworkError  = "unable to reach booking service"
	msgInvalidFormat = "invalid response format"
	msgRequestFailed = "request failed"

	// Sentinel status code in the alternate envelope meaning "ok".
	altCodeOK = "00"
)

// normalize classifies one HTTP response into the canonical envelope. The
// backend answers in one of three shapes: the canonical envelope itself, an
// alternate {code, content, message} envelope, or a bare payload whose
// success is known only from the HTTP status. Plain-text bodies are wrapped
// as messages.
func normalize(statusCode int, contentType string, body []byte) Envelope {
	httpOK := statusCode >= 200 && statusCode < 300

	if !isJSONContentType(contentType) {
		text := strings.TrimSpace(string(body))
		if httpOK {
			return Envelope{Success: true, Message: text}
		}
		if text == "" {
			text = fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
		}
		return Envelope{Success: false, Message: text, Error: text}
	}

	if !json.Valid(body) {
		return Envelope{Success: false, Message: msgInvalidFormat, Error: msgInvalidFormat}
	}

	env := decodeShapes(body, httpOK)

	if !httpOK || !env.Success {
		env.Success = false
		if env.Message == "" {
			env.Message = msgRequestFailed
		}
		if env.Error == "" {
			env.Error = env.Message
		}
	}
	return env
}

// decodeShapes tries the known body schemas in order: alternate envelope
// (has a content field), canonical envelope (has a success field), bare
// payload.
func decodeShapes(body []byte, httpOK bool) Envelope {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		// Valid JSON but not an object: a bare array or scalar payload.
		return Envelope{Success: httpOK, Data: body}
	}

	if content, ok := fields["content"]; ok {
		env := Envelope{Success: httpOK, Data: content}
		if rawCode, ok := fields["code"]; ok {
			var code string
			if err := json.Unmarshal(rawCode, &code); err == nil {
				env.Success = code == altCodeOK
			}
		}
		if rawMsg, ok := fields["message"]; ok {
			_ = json.Unmarshal(rawMsg, &env.Message)
		}
		if rawErr, ok := fields["error"]; ok {
			_ = json.Unmarshal(rawErr, &env.Error)
		}
		return env
	}

	if _, ok := fields["success"]; ok {
		var env Envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return Envelope{Success: false, Message: msgInvalidFormat, Error: msgInvalidFormat}
		}
		return env
	}

	return Envelope{Success: httpOK, Data: body}
}

func isJSONContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}
