package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnichat/client/internal/model"
	"omnichat/client/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(4)
	require.NoError(t, err)
	return s
}

func msg(id model.MessageID, conversationID, role, content string) model.Message {
	return model.Message{ID: id, ConversationID: conversationID, Role: role, Content: content}
}

func conversationIDs(s *store.Store) []string {
	var ids []string
	for _, c := range s.Snapshot().Conversations {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestStore_ConversationsSortPinnedFirstThenRecent(t *testing.T) {
	s := newStore(t)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.SetConversations([]model.Conversation{
		{ID: "old", UpdatedAt: base},
		{ID: "new", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "pinned", UpdatedAt: base.Add(-time.Hour), Pinned: true},
	})

	assert.Equal(t, []string{"pinned", "new", "old"}, conversationIDs(s))

	s.UpdateConversation("old", func(c *model.Conversation) { c.Pinned = true })
	assert.Equal(t, []string{"old", "pinned", "new"}, conversationIDs(s))
}

func TestStore_SnapshotIsDeepCopy(t *testing.T) {
	s := newStore(t)
	folder := "work"
	s.SetConversations([]model.Conversation{{ID: "c1", Tags: []string{"a"}, Folder: &folder}})
	s.Select("c1")
	s.AppendMessage(model.Message{
		ID: model.ConfirmedID("m1"), ConversationID: "c1", Role: model.RoleAssistant,
		Sources: []model.SourceReference{{Filename: "a.md"}},
	})

	snap := s.Snapshot()
	snap.Conversations[0].Tags[0] = "changed"
	*snap.Conversations[0].Folder = "changed"
	snap.Messages[0].Sources[0].Filename = "changed"

	again := s.Snapshot()
	assert.Equal(t, "a", again.Conversations[0].Tags[0])
	assert.Equal(t, "work", *again.Conversations[0].Folder)
	assert.Equal(t, "a.md", again.Messages[0].Sources[0].Filename)
}

func TestStore_AppendOnlyToSelectedConversation(t *testing.T) {
	s := newStore(t)
	s.Select("c1")

	assert.True(t, s.AppendMessage(msg(model.PendingID("tmp"), "c1", model.RoleUser, "hi")))
	assert.False(t, s.AppendMessage(msg(model.ConfirmedID("x"), "c2", model.RoleUser, "elsewhere")))
	assert.Len(t, s.Messages(), 1)
}

func TestStore_ConfirmMessage(t *testing.T) {
	s := newStore(t)
	s.Select("c1")
	s.AppendMessage(msg(model.PendingID("tmp-1"), "c1", model.RoleUser, "hi"))

	require.True(t, s.ConfirmMessage("tmp-1", "srv-1"))
	got := s.Messages()[0]
	assert.False(t, got.ID.IsPending())
	assert.Equal(t, "srv-1", got.ID.String())

	// Already confirmed ids are not reconciled twice.
	assert.False(t, s.ConfirmMessage("srv-1", "other"))
}

func TestStore_RemoveMessageByIdentity(t *testing.T) {
	s := newStore(t)
	s.Select("c1")
	s.AppendMessage(msg(model.ConfirmedID("u1"), "c1", model.RoleUser, "q"))
	s.AppendMessage(msg(model.ConfirmedID("a1"), "c1", model.RoleAssistant, "first"))
	s.AppendMessage(msg(model.ConfirmedID("a2"), "c1", model.RoleAssistant, "second"))

	require.True(t, s.RemoveMessage("a1"))
	assert.False(t, s.RemoveMessage("a1"))

	messages := s.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "u1", messages[0].ID.String())
	assert.Equal(t, "a2", messages[1].ID.String())
}

func TestStore_ApplyDeltaRequiresActiveSession(t *testing.T) {
	s := newStore(t)
	s.Select("c1")
	s.AppendMessage(msg(model.ConfirmedID("a1"), "c1", model.RoleAssistant, ""))

	_, ok := s.ApplyDelta("a1", "Hel")
	assert.False(t, ok)

	s.SetSession(model.StreamingSession{ConversationID: "c1", MessageID: "a1", Active: true})
	content, ok := s.ApplyDelta("a1", "Hel")
	require.True(t, ok)
	assert.Equal(t, "Hel", content)
	content, _ = s.ApplyDelta("a1", "lo")
	assert.Equal(t, "Hello", content)

	_, ok = s.ApplyDelta("a2", "!")
	assert.False(t, ok)

	snap := s.Snapshot()
	assert.Equal(t, "Hello", snap.Messages[0].Content)
	require.NotNil(t, snap.Session)
	assert.Equal(t, "Hello", snap.Session.AccumulatedContent)
}

func TestStore_SetMessagesIgnoresDeselectedConversation(t *testing.T) {
	s := newStore(t)
	s.Select("c1")
	s.Select("c2")

	assert.False(t, s.SetMessages("c1", []model.Message{msg(model.ConfirmedID("m1"), "c1", model.RoleUser, "late")}))
	assert.Empty(t, s.Messages())

	// The late load still warms the cache for the next visit.
	assert.True(t, s.Select("c1"))
	assert.Len(t, s.Messages(), 1)
}

func TestStore_SelectServesCachedMessages(t *testing.T) {
	s := newStore(t)
	s.Select("c1")
	s.SetMessages("c1", []model.Message{msg(model.ConfirmedID("m1"), "c1", model.RoleUser, "hello")})
	s.AppendMessage(msg(model.ConfirmedID("m2"), "c1", model.RoleAssistant, "hi"))

	assert.False(t, s.Select("c2"))
	assert.Empty(t, s.Messages())

	assert.True(t, s.Select("c1"))
	assert.Len(t, s.Messages(), 2)
}

func TestStore_RemoveSelectedConversationClearsSelection(t *testing.T) {
	s := newStore(t)
	s.SetConversations([]model.Conversation{{ID: "c1"}, {ID: "c2"}})
	s.Select("c1")
	s.AppendMessage(msg(model.ConfirmedID("m1"), "c1", model.RoleUser, "hello"))

	require.True(t, s.RemoveConversation("c1"))

	snap := s.Snapshot()
	assert.Empty(t, snap.SelectedConversationID)
	assert.Empty(t, snap.Messages)
	require.Len(t, snap.Conversations, 1)
	assert.Equal(t, "c2", snap.Conversations[0].ID)

	assert.False(t, s.Select("c1"), "cached messages of a deleted conversation are dropped")
}

func TestStore_SelectedBucketsDeduplicated(t *testing.T) {
	s := newStore(t)
	s.SetSelectedBuckets([]string{"b1", "", "b2", "b1"})
	assert.Equal(t, []string{"b1", "b2"}, s.SelectedBuckets())
}

func TestStore_SubscribeCoalescesNotifications(t *testing.T) {
	s := newStore(t)
	ch, unsubscribe := s.Subscribe()

	s.SetError("boom")
	s.SetPhase(model.PhaseSending)
	s.SetPhase(model.PhaseIdle)

	select {
	case <-ch:
	default:
		t.Fatal("expected a notification")
	}
	select {
	case <-ch:
		t.Fatal("notifications should coalesce into one signal")
	default:
	}

	unsubscribe()
	s.ClearError()
	select {
	case <-ch:
		t.Fatal("no notification after unsubscribe")
	default:
	}
}

func TestStore_NoopMutationsDoNotBumpVersion(t *testing.T) {
	s := newStore(t)
	before := s.Snapshot().Version

	s.SetPhase(model.PhaseIdle)
	s.ClearError()
	s.ClearSession()

	assert.Equal(t, before, s.Snapshot().Version)
}
