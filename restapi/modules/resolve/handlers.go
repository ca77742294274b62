// Package resolve implements the REST API handlers for asset resolution.
package resolve

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/internal/services"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// statusForResolutionError maps resolution faults to HTTP status codes.
// Unrecognized text is not a fault and never reaches this function.
func statusForResolutionError(err error) int {
	var invalid *model.InvalidVersionError
	var ambiguous *model.AmbiguousReleaseError
	var notImplemented *model.NotImplementedOSOptionError

	switch {
	case errors.As(err, &invalid):
		return fiber.StatusBadRequest
	case errors.As(err, &ambiguous):
		return fiber.StatusConflict
	case errors.As(err, &notImplemented):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

// PostResolve handles POST requests resolving a single asset description.
func PostResolve(db database.DBConnection, res *resolver.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ResolveRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		if req.OSText == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "os_text is required",
			})
		}

		svc := &services.ResolutionService{DB: db, Resolver: res}
		asset := req.ToInventoryRecord()

		var record *model.ResolutionRecord
		var err error
		if req.Persist {
			record, err = svc.ResolveAndStore(context.Background(), asset)
		} else {
			record, err = svc.ResolveRecord(asset)
		}
		if err != nil {
			return c.Status(statusForResolutionError(err)).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":    true,
			"matched":    record.Matched(),
			"resolution": record,
		})
	}
}

// PostResolveBatch handles POST requests resolving many assets at once.
// Per-asset failures are reported inline and never abort the batch.
func PostResolveBatch(db database.DBConnection, res *resolver.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req BatchResolveRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		if len(req.Assets) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "assets is required and must not be empty",
			})
		}

		svc := &services.ResolutionService{DB: db, Resolver: res}

		items := make([]services.BatchItem, 0, len(req.Assets))
		failed := 0
		for _, in := range req.Assets {
			asset := in.ToInventoryRecord()
			item := services.BatchItem{Asset: asset}

			var record *model.ResolutionRecord
			var err error
			if req.Persist || in.Persist {
				record, err = svc.ResolveAndStore(context.Background(), asset)
			} else {
				record, err = svc.ResolveRecord(asset)
			}
			if err != nil {
				failed++
				item.Error = err.Error()
			} else {
				item.Resolution = record
			}
			items = append(items, item)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"total":   len(items),
			"failed":  failed,
			"items":   items,
		})
	}
}
