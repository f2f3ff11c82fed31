package models

// Record is the caller-facing view of one stored entry.
// Name is set for name-keyed kinds, Event for the event kind.
type Record struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Event *Event `json:"event,omitempty"`
}

// GetID returns the record ID, used by quiet CLI output
func (r *Record) GetID() string {
	return r.ID
}
