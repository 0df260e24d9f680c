// file: internals/store/messages.go
package store

import (
	messagemodel "tutorku_backend/internals/features/messages/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddMessage(msg messagemodel.MessageModel) messagemodel.MessageModel {
	msg.MessageID = helper.NewID()

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

func (s *Store) GetMessageByID(id string) (messagemodel.MessageModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].MessageID == id {
			return s.messages[i], true
		}
	}
	return messagemodel.MessageModel{}, false
}

func (s *Store) UpdateMessage(id string, apply func(*messagemodel.MessageModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].MessageID == id {
			apply(&s.messages[i])
			return true
		}
	}
	return false
}

// MarkMessageRead shortcut untuk layar inbox.
func (s *Store) MarkMessageRead(id string) bool {
	return s.UpdateMessage(id, func(msg *messagemodel.MessageModel) {
		msg.Read = true
	})
}

func (s *Store) DeleteMessage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].MessageID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Messages() []messagemodel.MessageModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]messagemodel.MessageModel(nil), s.messages...)
}
