// Package models defines the medication record types and the derived
// values computed from them.
package models

// Status is the taken/pending state of a scheduled dose.
type Status string

const (
	StatusPending Status = "pending"
	StatusTaken   Status = "taken"
)

// Medication is one scheduled dose entry. ID is assigned by the server
// and immutable. Time is a local "HH:MM" display value with no date or
// timezone semantics. Owner is populated only in administrator views and
// is read-only on the client.
type Medication struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Time   string `json:"time"`
	Status Status `json:"status"`
	Owner  string `json:"owner,omitempty"`
}

// Taken reports whether the dose has been taken.
func (m Medication) Taken() bool {
	return m.Status == StatusTaken
}
