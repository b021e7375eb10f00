package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// ChatClientMock is a mock for svc.ChatClient
type ChatClientMock struct {
	mock.Mock
}

// Exchange mocks one chat request
func (m *ChatClientMock) Exchange(ctx context.Context, text string, sessionID *string) svc.Reply {
	args := m.Called(ctx, text, sessionID)
	if fn, ok := args.Get(0).(func(context.Context, string, *string) svc.Reply); ok {
		return fn(ctx, text, sessionID)
	}
	return args.Get(0).(svc.Reply)
}

// ContactClientMock is a mock for svc.ContactClient
type ContactClientMock struct {
	mock.Mock
}

// Submit mocks one contact submission
func (m *ContactClientMock) Submit(ctx context.Context, inquiry contact.Inquiry) (svc.Receipt, error) {
	args := m.Called(ctx, inquiry)
	return args.Get(0).(svc.Receipt), args.Error(1)
}
