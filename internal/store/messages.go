package store

import (
	"omnichat/client/internal/model"
)

// Messages returns a copy of the selected conversation's messages.
func (s *Store) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessages(s.messages)
}

// SetMessages replaces the message list if conversationID is still selected,
// so a slow load cannot overwrite a conversation the user has moved away from.
func (s *Store) SetMessages(conversationID string, messages []model.Message) bool {
	list := copyMessages(messages)
	return s.mutate(func() bool {
		if s.selectedID != conversationID {
			s.cache.Add(conversationID, list)
			return false
		}
		s.messages = list
		s.cache.Add(conversationID, copyMessages(list))
		return true
	})
}

// AppendMessage adds m to the end of the selected conversation.
func (s *Store) AppendMessage(m model.Message) bool {
	m = copyMessage(m)
	return s.mutate(func() bool {
		if s.selectedID == "" || m.ConversationID != s.selectedID {
			return false
		}
		s.messages = append(s.messages, m)
		return true
	})
}

// RemoveMessage deletes exactly the message carrying id.
func (s *Store) RemoveMessage(id string) bool {
	return s.mutate(func() bool {
		for i := range s.messages {
			if s.messages[i].ID.Is(id) {
				s.messages = append(s.messages[:i], s.messages[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateMessageContent overwrites the content of the message carrying id.
func (s *Store) UpdateMessageContent(id, content string) bool {
	return s.mutate(func() bool {
		for i := range s.messages {
			if s.messages[i].ID.Is(id) {
				if s.messages[i].Content == content {
					return false
				}
				s.messages[i].Content = content
				return true
			}
		}
		return false
	})
}

// ConfirmMessage reconciles a pending id with the id the backend assigned.
// An empty serverID keeps the temporary value.
func (s *Store) ConfirmMessage(tempID, serverID string) bool {
	return s.mutate(func() bool {
		for i := range s.messages {
			if s.messages[i].ID.IsPending() && s.messages[i].ID.Is(tempID) {
				s.messages[i].ID = s.messages[i].ID.Confirm(serverID)
				return true
			}
		}
		return false
	})
}

func copyMessages(messages []model.Message) []model.Message {
	out := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, copyMessage(m))
	}
	return out
}

func copyMessage(m model.Message) model.Message {
	if m.Sources != nil {
		m.Sources = append([]model.SourceReference{}, m.Sources...)
	}
	return m
}

// ApplyDelta appends delta to the active session's accumulator and writes the
// full accumulated text into the session's message in a single change. It
// returns the new accumulated text, or false when messageID is not the
// active session's message.
func (s *Store) ApplyDelta(messageID, delta string) (string, bool) {
	var content string
	ok := s.mutate(func() bool {
		if s.session == nil || !s.session.Active || s.session.MessageID != messageID {
			return false
		}
		s.session.AccumulatedContent += delta
		content = s.session.AccumulatedContent
		for i := range s.messages {
			if s.messages[i].ID.Is(messageID) {
				s.messages[i].Content = content
				break
			}
		}
		return true
	})
	return content, ok
}
