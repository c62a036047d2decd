package domain

import (
	"errors"
	"time"
)

var ErrTodoNotFound = errors.New("todo not found")

// Todo is a single task record. OwnerID is fixed at creation and never
// changes; OwnerName is a snapshot of the owner's name at creation time and
// is deliberately not kept in sync with later renames.
type Todo struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Text      string    `json:"text" bson:"text"`
	Completed bool      `json:"completed" bson:"completed"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	OwnerName string    `json:"owner_name" bson:"owner_name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
