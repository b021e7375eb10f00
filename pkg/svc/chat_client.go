package svc

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cyboglabs/cybot/pkg/logger"
)

// FallbackMessage is the assistant reply used whenever the chat backend can't be reached
const FallbackMessage = "I apologize, but I'm having trouble connecting right now. Please try again or contact support@cyboglabs.com for assistance."

// ChatRequest is the body of POST /api/chat. SessionID is null on the first request.
type ChatRequest struct {
	Message   string  `json:"message" form:"message"`
	SessionID *string `json:"session_id" form:"session_id"`
}

// ChatResponse is the body returned by POST /api/chat
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

// Reply is the outcome of one exchange. When Fallback is set, Text is the
// local apology and SessionID is empty so callers keep their current session.
type Reply struct {
	SessionID string
	Text      string
	Fallback  bool
}

// ChatClient turns user text into a reply. It never mutates session state.
type ChatClient interface {
	Exchange(ctx context.Context, text string, sessionID *string) Reply
}

// HTTPChatClient implements ChatClient against the backend chat endpoint
type HTTPChatClient struct {
	BaseURL      string
	Client       *http.Client
	FallbackText string
	Logger       logger.Logger
}

// NewHTTPChatClient is a constructor for HTTPChatClient structs
func NewHTTPChatClient(baseURL string, timeout time.Duration, log logger.Logger) *HTTPChatClient {
	return &HTTPChatClient{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		Client:       &http.Client{Timeout: timeout},
		FallbackText: FallbackMessage,
		Logger:       log,
	}
}

// Exchange sends one request. There is no retry: any failure becomes a fallback reply.
func (c *HTTPChatClient) Exchange(ctx context.Context, text string, sessionID *string) Reply {
	var chatRes ChatResponse
	err := postJSON(ctx, c.Client, c.BaseURL+"/api/chat", ChatRequest{
		Message:   text,
		SessionID: sessionID,
	}, &chatRes)
	if err == nil && chatRes.Response == "" {
		err = errors.New("empty chat response")
	}
	if err != nil {
		c.logger().Warn("chat", "chat exchange failed", map[string]interface{}{
			"error":       err,
			"has_session": sessionID != nil,
		})
		return Reply{Text: c.FallbackText, Fallback: true}
	}
	return Reply{SessionID: chatRes.SessionID, Text: chatRes.Response}
}

func (c *HTTPChatClient) logger() logger.Logger {
	if c.Logger == nil {
		return logger.NewNopLogger()
	}
	return c.Logger
}
