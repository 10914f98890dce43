package services

import (
	"ArGuide/models"
	"ArGuide/utils"
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// HistoryService persists guide results to Firestore.
type HistoryService struct {
	FirestoreClient *firestore.Client
}

// NewHistoryService initializes HistoryService with a Firestore client. A nil
// client means the capability is absent; callers hold a nil *HistoryService
// in that case.
func NewHistoryService(client *firestore.Client) *HistoryService {
	if client == nil {
		return nil
	}
	return &HistoryService{FirestoreClient: client}
}

// SaveHistory stores one guide result.
func (s *HistoryService) SaveHistory(ctx context.Context, entry models.HistoryEntry) error {
	docRef := s.FirestoreClient.Collection("histories").NewDoc()

	data := map[string]interface{}{
		"id":          docRef.ID,
		"name":        entry.Name,
		"description": entry.Description,
		"address":     entry.Address,
		"location":    &latlng.LatLng{Latitude: entry.Location.Latitude, Longitude: entry.Location.Longitude},
		"created_at":  entry.CreatedAt,
	}

	_, err := docRef.Set(ctx, data)
	return err
}

// GetHistories returns the most recent entries, newest first.
func (s *HistoryService) GetHistories(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	iter := s.FirestoreClient.Collection("histories").
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)

	var entries []models.HistoryEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch histories")
		}

		data := doc.Data()
		entry := models.HistoryEntry{
			ID:      doc.Ref.ID,
			Name:    stringField(data, "name"),
			Address: stringField(data, "address"),
		}
		entry.Description = stringField(data, "description")
		if point, ok := data["location"].(*latlng.LatLng); ok {
			entry.Location = models.GeoLocation{Latitude: point.Latitude, Longitude: point.Longitude}
		}
		if created, ok := data["created_at"].(time.Time); ok {
			entry.CreatedAt = created
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func stringField(data map[string]interface{}, key string) string {
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}
