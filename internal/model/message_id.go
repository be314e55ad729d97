package model

import (
	"encoding/json"
)

// MessageID identifies a message that is either still waiting for the backend
// (Pending, client-generated) or has been acknowledged (Confirmed, server-issued).
type MessageID struct {
	value   string
	pending bool
}

// PendingID wraps a temporary client-generated id.
func PendingID(tempID string) MessageID {
	return MessageID{value: tempID, pending: true}
}

// ConfirmedID wraps an id known to the backend.
func ConfirmedID(serverID string) MessageID {
	return MessageID{value: serverID}
}

// IsPending reports whether the id has not been reconciled yet.
func (id MessageID) IsPending() bool { return id.pending }

// IsZero reports whether the id is empty.
func (id MessageID) IsZero() bool { return id.value == "" }

func (id MessageID) String() string { return id.value }

// Is reports whether id carries the given raw value, regardless of its state.
func (id MessageID) Is(raw string) bool { return raw != "" && id.value == raw }

// Confirm returns the reconciled form of a pending id.
func (id MessageID) Confirm(serverID string) MessageID {
	if serverID == "" {
		serverID = id.value
	}
	return ConfirmedID(serverID)
}

// MarshalJSON encodes the id as a plain string; the pending flag is client-only state.
func (id MessageID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes a plain string. Ids read from the wire are always confirmed.
func (id *MessageID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*id = ConfirmedID(raw)
	return nil
}
