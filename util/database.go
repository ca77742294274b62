// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"context"
	"fmt"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/oslc/oslc-backend/database"
)

// FeedMetadata stores the high-water mark for release feed imports
type FeedMetadata struct {
	Key          string `json:"_key"`          // e.g., "windows", "red-hat-enterprise-linux"
	LastModified string `json:"last_modified"` // RFC3339 Timestamp
	Type         string `json:"type"`          // "feed_metadata"
}

// GetLastFeedImport retrieves the timestamp of the last successful feed
// import for an OS label
func GetLastFeedImport(db database.DBConnection, osLabel string) (time.Time, error) {
	key := SanitizeKey(osLabel)
	if key == "" {
		return time.Time{}, nil
	}

	ctx := context.Background()
	query := `RETURN DOCUMENT("metadata", @key)`
	bindVars := map[string]interface{}{"key": key}

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{BindVars: bindVars})
	if err != nil {
		return time.Time{}, nil
	}
	defer cursor.Close()

	var meta FeedMetadata
	if _, err := cursor.ReadDocument(ctx, &meta); err != nil {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, meta.LastModified)
}

// SaveLastFeedImport updates the timestamp after a successful feed import
func SaveLastFeedImport(db database.DBConnection, osLabel string, lastModified time.Time) error {
	key := SanitizeKey(osLabel)

	// Final safety check to prevent empty keys
	if key == "" {
		return fmt.Errorf("cannot save feed import for empty OS label (original: %s)", osLabel)
	}

	ctx := context.Background()
	query := `
		UPSERT { _key: @key }
		INSERT { _key: @key, last_modified: @time, type: "feed_metadata" }
		UPDATE { last_modified: @time }
		IN metadata
	`

	bindVars := map[string]interface{}{
		"key":  key,
		"time": lastModified.Format(time.RFC3339),
	}

	_, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{BindVars: bindVars})
	return err
}
