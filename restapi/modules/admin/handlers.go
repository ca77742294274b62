// Package admin implements the REST API handlers for admin operations.
// It provides endpoints for re-resolving stored assets and status monitoring.
package admin

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/gofiber/fiber/v2"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/internal/services"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// ReresolveRequest bounds the re-resolution run to recently seen assets
type ReresolveRequest struct {
	DaysBack int `json:"days_back"`
}

// ReresolveStatusResponse reports the state of a running re-resolution
type ReresolveStatusResponse struct {
	Running bool   `json:"running"`
	Status  string `json:"status"`
}

var reresolveRunning = false
var reresolveProgress = ""

// PostReresolve re-resolves stored assets against the current catalogs.
// Useful after a release feed update changed support windows or added
// releases that previously went unmatched.
func PostReresolve(db database.DBConnection, res *resolver.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if reresolveRunning {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Re-resolution already in progress",
				"status":  reresolveProgress,
			})
		}

		var req ReresolveRequest
		if err := c.BodyParser(&req); err != nil {
			req.DaysBack = 90
		}

		if req.DaysBack <= 0 || req.DaysBack > 365 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "days_back must be between 1 and 365",
			})
		}

		go runReresolve(db, res, req.DaysBack)

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("Re-resolution started for assets seen in the last %d days", req.DaysBack),
			"status":  "processing",
		})
	}
}

// GetReresolveStatus returns the current status of any running re-resolution
func GetReresolveStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ReresolveStatusResponse{
			Running: reresolveRunning,
			Status:  reresolveProgress,
		})
	}
}

func runReresolve(db database.DBConnection, res *resolver.Resolver, daysBack int) {
	reresolveRunning = true
	reresolveProgress = fmt.Sprintf("Starting re-resolution for %d days...", daysBack)

	ctx := context.Background()
	cutoffDate := time.Now().UTC().AddDate(0, 0, -daysBack)

	log.Printf("Starting asset re-resolution for last %d days...", daysBack)

	assetQuery := `
		FOR a IN asset
			LET seenAt = DATE_TIMESTAMP(a.seen_at)
			FILTER seenAt >= @cutoffDate
			SORT seenAt ASC
			RETURN a
	`

	cursor, err := db.Database.Query(ctx, assetQuery, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"cutoffDate": cutoffDate.Unix() * 1000,
		},
	})
	if err != nil {
		reresolveProgress = fmt.Sprintf("Failed: %v", err)
		reresolveRunning = false
		log.Printf("Re-resolution failed: %v", err)
		return
	}
	defer cursor.Close()

	var assets []*model.InventoryRecord
	for cursor.HasMore() {
		var asset model.InventoryRecord
		if _, err := cursor.ReadDocument(ctx, &asset); err == nil {
			assets = append(assets, &asset)
		}
	}

	reresolveProgress = fmt.Sprintf("Processing %d assets...", len(assets))
	log.Printf("Processing %d assets", len(assets))

	svc := &services.ResolutionService{DB: db, Resolver: res}

	resolved := 0
	failed := 0
	for i, asset := range assets {
		reresolveProgress = fmt.Sprintf("Processing asset %d/%d: %s",
			i+1, len(assets), asset.OSText)

		record, err := svc.ResolveRecord(asset)
		if err != nil {
			failed++
			continue
		}
		if _, err := database.SaveResolution(ctx, db, record, asset.Key); err != nil {
			failed++
			continue
		}
		resolved++
	}

	reresolveProgress = fmt.Sprintf("Complete! Resolved: %d, Failed: %d", resolved, failed)
	reresolveRunning = false

	log.Printf("Re-resolution complete! Resolved: %d, Failed: %d", resolved, failed)
}
