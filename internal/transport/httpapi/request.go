package httpapi

import "github.com/thenoetrevino/fete/internal/models"

// AddRecordRequest is the body of POST /api/v1/{kind}.
// Name is used by name-keyed kinds, Event by the event kind.
type AddRecordRequest struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Event *models.Event `json:"event"`
}
