// Package store holds the in-memory projection of conversations, messages and
// engine state that the UI renders from.
package store

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"omnichat/client/internal/model"
)

const DefaultCacheSize = 32

// Snapshot is a deep copy of the store at one point in time.
type Snapshot struct {
	Version                uint64                  `json:"version"`
	Conversations          []model.Conversation    `json:"conversations"`
	SelectedConversationID string                  `json:"selected_conversation_id,omitempty"`
	Messages               []model.Message         `json:"messages"`
	Phase                  model.Phase             `json:"phase"`
	Session                *model.StreamingSession `json:"session,omitempty"`
	Error                  string                  `json:"error,omitempty"`
	SelectedBucketIDs      []string                `json:"selected_bucket_ids"`
}

// Store is safe for concurrent use. Callers that need several mutations to
// appear atomic must serialise them themselves.
type Store struct {
	mu            sync.RWMutex
	version       uint64
	conversations []model.Conversation
	selectedID    string
	messages      []model.Message
	phase         model.Phase
	session       *model.StreamingSession
	errMsg        string
	bucketIDs     []string

	// Message lists of recently viewed conversations, keyed by conversation id.
	cache *lru.Cache

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

func New(cacheSize int) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create message cache: %w", err)
	}
	return &Store{
		phase: model.PhaseIdle,
		cache: cache,
		subs:  make(map[int]chan struct{}),
	}, nil
}

// Subscribe returns a channel that receives a value after every change.
// Notifications coalesce: a slow reader sees one pending signal, not a backlog.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// mutate runs fn under the write lock and notifies subscribers when fn reports a change.
func (s *Store) mutate(fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	if changed {
		s.version++
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
	return changed
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Version:                s.version,
		Conversations:          make([]model.Conversation, 0, len(s.conversations)),
		SelectedConversationID: s.selectedID,
		Messages:               copyMessages(s.messages),
		Phase:                  s.phase,
		Error:                  s.errMsg,
		SelectedBucketIDs:      append([]string{}, s.bucketIDs...),
	}
	for _, c := range s.conversations {
		snap.Conversations = append(snap.Conversations, copyConversation(c))
	}
	if s.session != nil {
		session := *s.session
		snap.Session = &session
	}
	return snap
}

// Phase and session

func (s *Store) Phase() model.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Store) SetPhase(phase model.Phase) {
	s.mutate(func() bool {
		if s.phase == phase {
			return false
		}
		s.phase = phase
		return true
	})
}

// Session returns the active streaming session, if any.
func (s *Store) Session() (model.StreamingSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return model.StreamingSession{}, false
	}
	return *s.session, true
}

func (s *Store) SetSession(session model.StreamingSession) {
	s.mutate(func() bool {
		s.session = &session
		return true
	})
}

func (s *Store) ClearSession() {
	s.mutate(func() bool {
		if s.session == nil {
			return false
		}
		s.session = nil
		return true
	})
}

// Error slot

func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) SetError(msg string) {
	s.mutate(func() bool {
		if s.errMsg == msg {
			return false
		}
		s.errMsg = msg
		return true
	})
}

func (s *Store) ClearError() { s.SetError("") }

// Knowledge selection

func (s *Store) SelectedBuckets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.bucketIDs...)
}

func (s *Store) SetSelectedBuckets(ids []string) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	s.mutate(func() bool {
		s.bucketIDs = unique
		return true
	})
}
