package models

import "time"

// HistoryEntry is one saved guide result.
type HistoryEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Location    GeoLocation `json:"location"`
	CreatedAt   time.Time   `json:"created_at"`
}
