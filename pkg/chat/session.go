package chat

import (
	"errors"
	"strings"
)

// ErrEmptyMessage is returned when user text is blank after trimming
var ErrEmptyMessage = errors.New("message is empty")

// Session owns the server-assigned session ID and the ordered transcript for
// the lifetime of one widget. Entries are only ever appended.
type Session struct {
	sessionID  *string
	transcript []Message
}

// NewSession is a constructor for an empty Session with no session ID
func NewSession() *Session {
	return &Session{transcript: []Message{}}
}

// AppendUserMessage trims text and appends it as a user message
func (s *Session) AppendUserMessage(text string) (Message, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return Message{}, ErrEmptyMessage
	}
	message := newMessage(RoleUser, body)
	s.transcript = append(s.transcript, message)
	return message, nil
}

// AppendAssistantMessage appends a reply, either from the server or the local fallback
func (s *Session) AppendAssistantMessage(text string) Message {
	message := newMessage(RoleAssistant, text)
	s.transcript = append(s.transcript, message)
	return message
}

// SetSessionID records the ID future requests must reuse. Empty IDs are ignored
// and setting the same value again is harmless.
func (s *Session) SetSessionID(id string) {
	if id == "" {
		return
	}
	s.sessionID = &id
}

// SessionID returns the current session ID and whether one has been assigned
func (s *Session) SessionID() (string, bool) {
	if s.sessionID == nil {
		return "", false
	}
	return *s.sessionID, true
}

// SessionIDPtr returns a copy of the session ID suitable for a nullable wire field
func (s *Session) SessionIDPtr() *string {
	if s.sessionID == nil {
		return nil
	}
	id := *s.sessionID
	return &id
}

// Transcript returns a copy of the messages in conversation order
func (s *Session) Transcript() []Message {
	messages := make([]Message, len(s.transcript))
	copy(messages, s.transcript)
	return messages
}

func (s *Session) Len() int {
	return len(s.transcript)
}

// Counts returns the number of user and assistant messages in the transcript
func (s *Session) Counts() (users int, assistants int) {
	for _, message := range s.transcript {
		switch message.Role {
		case RoleUser:
			users++
		case RoleAssistant:
			assistants++
		}
	}
	return users, assistants
}
