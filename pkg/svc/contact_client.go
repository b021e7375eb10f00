package svc

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/logger"
)

// ContactResponse is the body returned by POST /api/contact
type ContactResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// Receipt is what the widget shows after a successful submission
type Receipt struct {
	Message string
}

// ContactClient posts inquiries to the backend
type ContactClient interface {
	Submit(ctx context.Context, inquiry contact.Inquiry) (Receipt, error)
}

// HTTPContactClient implements ContactClient against the backend contact endpoint
type HTTPContactClient struct {
	BaseURL string
	Client  *http.Client
	Logger  logger.Logger
}

// NewHTTPContactClient is a constructor for HTTPContactClient structs
func NewHTTPContactClient(baseURL string, timeout time.Duration, log logger.Logger) *HTTPContactClient {
	return &HTTPContactClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Logger:  log,
	}
}

// Submit makes a single attempt. Any 2xx is a success.
func (c *HTTPContactClient) Submit(ctx context.Context, inquiry contact.Inquiry) (Receipt, error) {
	var contactRes ContactResponse
	err := postJSON(ctx, c.Client, c.BaseURL+"/api/contact", inquiry.Normalize(), &contactRes)
	if _, ok := err.(*DecodeError); ok {
		// The inquiry was accepted, the body just isn't ours to read
		c.logger().Debug("contact", "ignoring undecodable success body", map[string]interface{}{"error": err})
		return Receipt{}, nil
	}
	if err != nil {
		c.logger().Warn("contact", "contact submission failed", map[string]interface{}{
			"error": err,
			"type":  inquiry.Normalize().Type,
		})
		return Receipt{}, err
	}
	return Receipt{Message: contactRes.Message}, nil
}

func (c *HTTPContactClient) logger() logger.Logger {
	if c.Logger == nil {
		return logger.NewNopLogger()
	}
	return c.Logger
}
