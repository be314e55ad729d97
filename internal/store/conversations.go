package store

import (
	"sort"

	"omnichat/client/internal/model"
)

// SetConversations replaces the conversation list.
func (s *Store) SetConversations(conversations []model.Conversation) {
	list := make([]model.Conversation, 0, len(conversations))
	for _, c := range conversations {
		list = append(list, copyConversation(c))
	}
	sortConversations(list)
	s.mutate(func() bool {
		s.conversations = list
		return true
	})
}

// UpsertConversation inserts c or replaces the entry with the same id.
func (s *Store) UpsertConversation(c model.Conversation) {
	c = copyConversation(c)
	s.mutate(func() bool {
		for i := range s.conversations {
			if s.conversations[i].ID == c.ID {
				s.conversations[i] = c
				sortConversations(s.conversations)
				return true
			}
		}
		s.conversations = append(s.conversations, c)
		sortConversations(s.conversations)
		return true
	})
}

func (s *Store) Conversation(id string) (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conversations {
		if c.ID == id {
			return copyConversation(c), true
		}
	}
	return model.Conversation{}, false
}

// UpdateConversation applies fn to the conversation with the given id.
// It reports false when the conversation is not in the list.
func (s *Store) UpdateConversation(id string, fn func(c *model.Conversation)) bool {
	return s.mutate(func() bool {
		for i := range s.conversations {
			if s.conversations[i].ID == id {
				fn(&s.conversations[i])
				sortConversations(s.conversations)
				return true
			}
		}
		return false
	})
}

// RemoveConversation drops a conversation and its cached messages, and clears
// the selection when it was selected.
func (s *Store) RemoveConversation(id string) bool {
	return s.mutate(func() bool {
		s.cache.Remove(id)
		removed := false
		kept := s.conversations[:0]
		for _, c := range s.conversations {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		s.conversations = kept
		if s.selectedID == id {
			s.selectedID = ""
			s.messages = nil
			removed = true
		}
		return removed
	})
}

func (s *Store) SelectedConversationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Select makes id the selected conversation. The outgoing conversation's
// messages are kept in the cache, and the incoming one is served from the
// cache when present. It reports whether cached messages were used.
func (s *Store) Select(id string) bool {
	cached := false
	s.mutate(func() bool {
		if s.selectedID != "" && s.selectedID != id {
			s.cache.Add(s.selectedID, copyMessages(s.messages))
		}
		s.selectedID = id
		s.messages = nil
		if id == "" {
			return true
		}
		if v, ok := s.cache.Get(id); ok {
			s.messages = copyMessages(v.([]model.Message))
			cached = true
		}
		return true
	})
	return cached
}

func sortConversations(list []model.Conversation) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Pinned != list[j].Pinned {
			return list[i].Pinned
		}
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
}

func copyConversation(c model.Conversation) model.Conversation {
	if c.Tags != nil {
		c.Tags = append([]string{}, c.Tags...)
	}
	if c.Folder != nil {
		folder := *c.Folder
		c.Folder = &folder
	}
	return c
}
