package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cyboglabs/cybot/pkg/answers"
	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/locale"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// Listing caps, matching what the admin views page through
const (
	answersListLimit  = 100
	contactsListLimit = 1000
)

// SubmissionStore persists contact submissions
type SubmissionStore interface {
	Save(inquiry contact.Inquiry) (*contact.Submission, error)
	List(limit int) ([]contact.Submission, error)
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Service implements the chat and contact endpoints independent of transport
type Service struct {
	Answers      answers.Source
	Submissions  SubmissionStore
	Publisher    svc.Publisher
	TopicARN     string
	Logger       logger.Logger
	NewSessionID func() string
	// AdminToken guards the submissions listing. Listing is refused while it's empty.
	AdminToken string
}

// NewService is a constructor for Service structs
func NewService(source answers.Source, store SubmissionStore, publisher svc.Publisher, topicARN string, log logger.Logger) *Service {
	return &Service{
		Answers:      source,
		Submissions:  store,
		Publisher:    publisher,
		TopicARN:     topicARN,
		Logger:       log,
		NewSessionID: func() string { return uuid.New().String() },
	}
}

// Chat answers one message. The session ID is echoed back, or created on the
// first message of a conversation. Nothing about the conversation is stored.
func (s *Service) Chat(ctx context.Context, req svc.ChatRequest, acceptLanguage string) (int, interface{}) {
	if strings.TrimSpace(req.Message) == "" {
		return http.StatusBadRequest, ErrorResponse{Error: "message is required"}
	}
	sessionID := ""
	if req.SessionID != nil {
		sessionID = strings.TrimSpace(*req.SessionID)
	}
	if sessionID == "" {
		sessionID = s.NewSessionID()
	}

	localizer := locale.LoadLocalizer(acceptLanguage)
	knowledgeBase, err := s.Answers.Answers()
	if err != nil {
		s.Logger.Error("api", "chat error", map[string]interface{}{
			"error":      err,
			"session_id": sessionID,
		})
		return http.StatusOK, svc.ChatResponse{
			SessionID: sessionID,
			Response:  locale.Text(localizer, "server-apology", nil),
		}
	}
	return http.StatusOK, svc.ChatResponse{
		SessionID: sessionID,
		Response:  answers.FindBestAnswer(req.Message, knowledgeBase, localizer),
	}
}

// Contact validates, stores and announces one inquiry
func (s *Service) Contact(ctx context.Context, inquiry contact.Inquiry, acceptLanguage string) (int, interface{}) {
	localizer := locale.LoadLocalizer(acceptLanguage)
	if err := inquiry.Validate(); err != nil {
		fields := []string{}
		if invalid, ok := err.(*contact.ValidationError); ok {
			fields = invalid.Fields
		}
		return http.StatusBadRequest, svc.ContactResponse{
			Message: locale.Text(localizer, "contact-invalid", map[string]string{"Fields": strings.Join(fields, ", ")}),
			Fields:  fields,
		}
	}

	submission, err := s.Submissions.Save(inquiry)
	if err != nil {
		s.Logger.Error("api", "contact form error", map[string]interface{}{"error": err})
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit contact form"}
	}

	// The submission is already stored, so a failed notification isn't the sender's problem
	submissionJSON, _ := json.Marshal(submission)
	if err := s.Publisher.Publish(string(submissionJSON), s.TopicARN, svc.ContactReceivedFeed); err != nil {
		s.Logger.Warn("api", "contact notification failed", map[string]interface{}{
			"error":         err,
			"submission_id": submission.ID,
		})
	}

	s.Logger.Info("api", "contact submission stored", map[string]interface{}{
		"submission_id": submission.ID,
		"type":          submission.Type,
	})
	return http.StatusOK, svc.ContactResponse{
		Success: true,
		Message: contact.Confirmation(inquiry, localizer),
	}
}

// ListAnswers returns the knowledge base the chat endpoint answers from
func (s *Service) ListAnswers(ctx context.Context) (int, interface{}) {
	knowledgeBase, err := s.Answers.Answers()
	if err != nil {
		s.Logger.Error("api", "error getting answers", map[string]interface{}{"error": err})
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to get answers"}
	}
	if len(knowledgeBase) > answersListLimit {
		knowledgeBase = knowledgeBase[:answersListLimit]
	}
	if knowledgeBase == nil {
		knowledgeBase = []answers.Answer{}
	}
	return http.StatusOK, knowledgeBase
}

// ListContacts returns the newest submissions to a caller holding the admin token
func (s *Service) ListContacts(ctx context.Context, authorization string) (int, interface{}) {
	if !s.authorized(authorization) {
		return http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"}
	}
	submissions, err := s.Submissions.List(contactsListLimit)
	if err != nil {
		s.Logger.Error("api", "error listing contacts", map[string]interface{}{"error": err})
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to get contacts"}
	}
	return http.StatusOK, submissions
}

func (s *Service) authorized(authorization string) bool {
	if s.AdminToken == "" {
		return false
	}
	expected := "Bearer " + s.AdminToken
	return subtle.ConstantTimeCompare([]byte(authorization), []byte(expected)) == 1
}
