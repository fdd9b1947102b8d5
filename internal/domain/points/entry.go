package points

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is an immutable, append-only record of one point movement.
type HistoryEntry struct {
	id        uuid.UUID
	profileID uuid.UUID
	delta     int
	reason    Reason
	createdAt time.Time
}

func NewHistoryEntry(profileID uuid.UUID, delta int, reason Reason, now time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        uuid.New(),
		profileID: profileID,
		delta:     delta,
		reason:    reason,
		createdAt: now,
	}
}

func RehydrateHistoryEntry(id, profileID uuid.UUID, delta int, reasonTag string, createdAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        id,
		profileID: profileID,
		delta:     delta,
		reason:    ParseTag(reasonTag),
		createdAt: createdAt,
	}
}

func (e *HistoryEntry) ID() uuid.UUID        { return e.id }
func (e *HistoryEntry) ProfileID() uuid.UUID { return e.profileID }
func (e *HistoryEntry) Delta() int           { return e.delta }
func (e *HistoryEntry) Reason() Reason       { return e.reason }
func (e *HistoryEntry) CreatedAt() time.Time { return e.createdAt }
