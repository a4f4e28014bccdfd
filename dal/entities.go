package dal

import (
	"time"
)

// Send event actions. The send_events table is append-only; the event log is
// the sole source of truth for what has been shown or hidden.
const (
	ActionSent   = "sent"
	ActionPin    = "pin"
	ActionHide   = "hide"
	ActionOpen   = "open"
	ActionSnooze = "snooze"
	ActionPause  = "pause"
	ActionMore   = "more"
)

type User struct {
	Id              string
	Email           string
	Timezone        string // IANA name, e.g. Europe/Berlin
	Active          bool
	LastSnoozedAt   *time.Time // nil if the user never snoozed
	SendCount       int        // items per daily digest
	SourceAccountId string     // the user's account id on the bookmark source platform
	SourceToken     string     // bearer token for the source API
	CreatedAt       time.Time
}

type Item struct {
	Id          string
	UserId      string
	AuthorId    string // empty when the source did not report an author
	Handle      string
	DisplayName string
	Text        string
	FirstSeenAt time.Time // set on first observation, immutable afterwards
}

type SendEvent struct {
	Id         int
	UserId     string
	ItemId     string
	Action     string
	OccurredAt time.Time
}

// PoolItem is one row of the candidate pool query: enough to score and sample
// without loading full item content.
type PoolItem struct {
	ItemId      string
	AuthorId    string
	FirstSeenAt time.Time
	EverSent    bool
}
