package history

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a history item does not exist.
var ErrNotFound = errors.New("history item not found")

// Item is one summarization kept in the session history.
type Item struct {
	ID               string
	CreatedAt        time.Time
	InputText        string
	Summary          string
	InputWordCount   int
	SummaryWordCount int
}

// Storage keeps the session history, newest first.
type Storage interface {
	// Add stores item, assigning an ID when empty, and returns the stored item.
	Add(item Item) (Item, error)
	List() []Item
	Get(id string) (Item, error)
	Remove(id string) error
	Clear()
	Len() int
}
