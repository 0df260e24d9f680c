// file: internals/features/messages/dto/message_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/messages/model"
)

type CreateMessageRequest struct {
	From    string `json:"from"    validate:"required"`
	To      string `json:"to"      validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Content string `json:"content" validate:"required"`
	Date    string `json:"date"    validate:"required"`

	Type     *m.MessageType     `json:"type,omitempty"     validate:"omitempty,oneof=Student Parent Admin"`
	Priority *m.MessagePriority `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
}

type PatchMessageRequest struct {
	From    *string `json:"from,omitempty"`
	To      *string `json:"to,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Content *string `json:"content,omitempty"`
	Date    *string `json:"date,omitempty"`

	Read     *bool              `json:"read,omitempty"`
	Type     *m.MessageType     `json:"type,omitempty"     validate:"omitempty,oneof=Student Parent Admin"`
	Priority *m.MessagePriority `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
}

func (r *CreateMessageRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchMessageRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateMessageRequest) ApplyToModel(dst *m.MessageModel) {
	dst.From = strings.TrimSpace(r.From)
	dst.To = strings.TrimSpace(r.To)
	dst.Subject = strings.TrimSpace(r.Subject)
	dst.Content = r.Content
	dst.Date = strings.TrimSpace(r.Date)

	dst.Read = false
	if r.Type != nil {
		dst.Type = *r.Type
	} else {
		dst.Type = m.MessageFromParent
	}
	if r.Priority != nil {
		dst.Priority = *r.Priority
	} else {
		dst.Priority = m.PriorityMedium
	}
}

func (p *PatchMessageRequest) ApplyPatch(dst *m.MessageModel) {
	if p.From != nil {
		dst.From = strings.TrimSpace(*p.From)
	}
	if p.To != nil {
		dst.To = strings.TrimSpace(*p.To)
	}
	if p.Subject != nil {
		dst.Subject = strings.TrimSpace(*p.Subject)
	}
	if p.Content != nil {
		dst.Content = *p.Content
	}
	if p.Date != nil {
		dst.Date = strings.TrimSpace(*p.Date)
	}
	if p.Read != nil {
		dst.Read = *p.Read
	}
	if p.Type != nil {
		dst.Type = *p.Type
	}
	if p.Priority != nil {
		dst.Priority = *p.Priority
	}
}

type MessageResponse struct {
	MessageID string            `json:"message_id"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Subject   string            `json:"subject"`
	Content   string            `json:"content"`
	Date      string            `json:"date"`
	Read      bool              `json:"read"`
	Type      m.MessageType     `json:"type"`
	Priority  m.MessagePriority `json:"priority"`
}

func NewMessageResponse(src *m.MessageModel) MessageResponse {
	return MessageResponse{
		MessageID: src.MessageID,
		From:      src.From,
		To:        src.To,
		Subject:   src.Subject,
		Content:   src.Content,
		Date:      src.Date,
		Read:      src.Read,
		Type:      src.Type,
		Priority:  src.Priority,
	}
}
