package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/schema"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func header(request events.APIGatewayProxyRequest, name string) string {
	for k, v := range request.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func proxyResponse(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		Body:       string(bodyJSON),
		Headers:    map[string]string{"content-type": "application/json"},
		StatusCode: status,
	}, nil
}

// HandleChatRequest adapts Service.Chat to API Gateway
func (s *Service) HandleChatRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var chatReq svc.ChatRequest
	if err := json.Unmarshal([]byte(request.Body), &chatReq); err != nil {
		return proxyResponse(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	return proxyResponse(s.Chat(ctx, chatReq, header(request, "Accept-Language")))
}

// HandleContactRequest adapts Service.Contact to API Gateway. Plain HTML form
// posts are accepted alongside JSON.
func (s *Service) HandleContactRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var inquiry contact.Inquiry
	if strings.HasPrefix(header(request, "Content-Type"), "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(request.Body)
		if err != nil {
			return proxyResponse(http.StatusBadRequest, ErrorResponse{Error: "invalid form body"})
		}
		// Ignore keys not in the inquiry, like honeypot or submit button fields
		formDecoder := schema.NewDecoder()
		formDecoder.IgnoreUnknownKeys(true)
		formDecoder.SetAliasTag("form")
		if err := formDecoder.Decode(&inquiry, values); err != nil {
			return proxyResponse(http.StatusBadRequest, ErrorResponse{Error: "invalid form body"})
		}
	} else if err := json.Unmarshal([]byte(request.Body), &inquiry); err != nil {
		return proxyResponse(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	return proxyResponse(s.Contact(ctx, inquiry, header(request, "Accept-Language")))
}

// HandleAnswersRequest adapts Service.ListAnswers to API Gateway
func (s *Service) HandleAnswersRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return proxyResponse(s.ListAnswers(ctx))
}

// HandleContactsRequest adapts Service.ListContacts to API Gateway
func (s *Service) HandleContactsRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return proxyResponse(s.ListContacts(ctx, header(request, "Authorization")))
}
