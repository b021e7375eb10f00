package chat

import "time"

// Role identifies who authored a Message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a chat transcript
type Message struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func newMessage(role Role, content string) Message {
	createdAt := time.Now()
	return Message{
		Role:      role,
		Content:   content,
		CreatedAt: &createdAt,
	}
}
