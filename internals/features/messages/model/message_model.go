// file: internals/features/messages/model/message_model.go
package model

type MessageType string

const (
	MessageFromStudent MessageType = "Student"
	MessageFromParent  MessageType = "Parent"
	MessageFromAdmin   MessageType = "Admin"
)

type MessagePriority string

const (
	PriorityLow    MessagePriority = "Low"
	PriorityMedium MessagePriority = "Medium"
	PriorityHigh   MessagePriority = "High"
)

type MessageModel struct {
	MessageID string `json:"message_id"`

	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD

	Read     bool            `json:"read"`
	Type     MessageType     `json:"type"`
	Priority MessagePriority `json:"priority"`
}
