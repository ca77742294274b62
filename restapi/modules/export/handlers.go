// Package export implements catalog export endpoints (CSV and JSON dumps).
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/resolver"
)

var csvHeader = []string{
	"os", "release", "version", "latest", "channels", "end_of_life", "status", "details",
}

// GetCatalogCSV handles GET requests dumping every registered catalog as CSV.
// One row per release and support channel.
func GetCatalogCSV(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(csvHeader); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		for _, os := range reg.All() {
			cat, err := os.Catalog()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}

			for _, release := range cat.All() {
				for _, channel := range release.Support.ChannelNames() {
					window, _ := release.Support.Channel(channel)
					row := []string{
						os.Label,
						release.Label,
						release.Version.Key(),
						strconv.FormatBool(release.Latest),
						channel,
						window.EndOfLife().Format("2006-01-02"),
						window.StatusAt(now),
						window.SupportDetailsAt(now),
					}
					if err := w.Write(row); err != nil {
						return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
							"success": false,
							"message": err.Error(),
						})
					}
				}
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalog.csv"`)
		return c.Send(buf.Bytes())
	}
}

// GetCatalogJSON handles GET requests dumping every registered catalog as JSON.
func GetCatalogJSON(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()

		data := fiber.Map{}
		for _, os := range reg.All() {
			cat, err := os.Catalog()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}

			releases := []map[string]interface{}{}
			for _, release := range cat.All() {
				releases = append(releases, release.ToRecord(now))
			}
			data[os.Label] = releases
		}

		return c.JSON(fiber.Map{
			"success":     true,
			"exported_at": now,
			"data":        data,
		})
	}
}

var resolutionCSVHeader = []string{
	"resolved_at", "asset_text", "version_token", "os_label", "os_family",
	"release_id", "release_label", "edition", "channel", "supported", "details",
}

// GetResolutions handles GET requests exporting stored resolution records.
// The format query parameter selects csv or json (the default).
func GetResolutions(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "1000"))
		if err != nil || limit <= 0 {
			limit = 1000
		}

		resolutions, err := database.FindRecentResolutions(context.Background(), db.Database, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		if c.Query("format") != "csv" {
			return c.JSON(fiber.Map{
				"success": true,
				"total":   len(resolutions),
				"data":    resolutions,
			})
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(resolutionCSVHeader); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		for _, r := range resolutions {
			supported := ""
			if r.Supported != nil {
				supported = strconv.FormatBool(*r.Supported)
			}
			row := []string{
				r.ResolvedAt.Format(time.RFC3339),
				r.AssetText,
				r.VersionToken,
				r.OSLabel,
				r.OSFamily,
				r.ReleaseID,
				r.ReleaseLabel,
				r.Edition,
				r.Channel,
				supported,
				r.Details,
			}
			if err := w.Write(row); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="resolutions.csv"`)
		return c.Send(buf.Bytes())
	}
}

// PostSnapshot handles POST requests persisting the current catalog state of
// every registered OS as release snapshots.
func PostSnapshot(db database.DBConnection, reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()
		ctx := context.Background()

		saved := 0
		for _, os := range reg.All() {
			cat, err := os.Catalog()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}

			for _, release := range cat.All() {
				snapshot := release.ToRecord(now)
				snapshot["objtype"] = "ReleaseSnapshot"
				snapshot["os"] = os.Label
				snapshot["snapshot_at"] = now
				if err := database.SaveReleaseSnapshot(ctx, db, snapshot); err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"success": false,
						"message": err.Error(),
					})
				}
				saved++
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"saved":   saved,
		})
	}
}
