// Package dashboard implements the resolvers for dashboard metrics.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/resolver"
)

// ResolveOverview handles fetching the high-level dashboard metrics
func ResolveOverview(reg *resolver.Registry) (interface{}, error) {
	now := time.Now().UTC()

	totalReleases := 0
	supported := 0
	retired := 0

	for _, os := range reg.All() {
		cat, err := os.Catalog()
		if err != nil {
			return nil, err
		}
		totalReleases += cat.Len()
		supported += len(cat.SupportedAt(now))
		retired += len(cat.RetiredAt(now))
	}

	return map[string]interface{}{
		"total_oses":         len(reg.All()),
		"total_releases":     totalReleases,
		"supported_releases": supported,
		"retired_releases":   retired,
	}, nil
}

// ResolveResolutionStatus fetches the support breakdown of stored resolutions
func ResolveResolutionStatus(db database.DBConnection) (interface{}, error) {
	supported, retired, err := database.CountResolutionsBySupport(context.Background(), db.Database)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"supported": supported,
		"retired":   retired,
	}, nil
}

// ResolveRetiringReleases lists the supported releases whose support ends
// soonest, one row per ongoing channel.
func ResolveRetiringReleases(reg *resolver.Registry, limit int) (interface{}, error) {
	now := time.Now().UTC()

	rows := []map[string]interface{}{}
	for _, os := range reg.All() {
		cat, err := os.Catalog()
		if err != nil {
			return nil, err
		}
		for _, release := range cat.All() {
			for channel, window := range release.Support.OngoingAt(now) {
				rows = append(rows, map[string]interface{}{
					"os":          os.Label,
					"release":     release.Label,
					"version":     release.Version.Key(),
					"channel":     channel,
					"end_of_life": window.EndOfLife().Format("2006-01-02"),
					"details":     window.SupportDetailsAt(now),
				})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i]["end_of_life"].(string) < rows[j]["end_of_life"].(string)
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ResolveResolutionTrend returns counts of stored resolutions grouped by day
func ResolveResolutionTrend(db database.DBConnection, days int) ([]map[string]interface{}, error) {
	ctx := context.Background()

	query := `
		FOR r IN resolution
			FILTER r.resolved_at >= @since
			COLLECT day = DATE_FORMAT(r.resolved_at, "%yyyy-%mm-%dd"),
					matched = (r.os_label != null AND r.os_label != "")
			WITH COUNT INTO total
			SORT day ASC
			RETURN { day, matched, total }
	`

	since := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"since": since},
	})
	if err != nil {
		return []map[string]interface{}{}, err
	}
	defer cursor.Close()

	type row struct {
		Day     string `json:"day"`
		Matched bool   `json:"matched"`
		Total   int    `json:"total"`
	}

	byDay := map[string]map[string]interface{}{}
	order := []string{}
	for cursor.HasMore() {
		var rec row
		if _, err := cursor.ReadDocument(ctx, &rec); err != nil {
			continue
		}
		entry, ok := byDay[rec.Day]
		if !ok {
			entry = map[string]interface{}{"date": rec.Day, "matched": 0, "unmatched": 0}
			byDay[rec.Day] = entry
			order = append(order, rec.Day)
		}
		if rec.Matched {
			entry["matched"] = rec.Total
		} else {
			entry["unmatched"] = rec.Total
		}
	}

	trend := []map[string]interface{}{}
	for _, day := range order {
		trend = append(trend, byDay[day])
	}
	return trend, nil
}
