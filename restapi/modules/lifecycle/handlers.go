// Package lifecycle implements the REST API handlers for support lifecycle queries.
package lifecycle

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// GetOperatingSystems handles GET requests listing every registered OS.
func GetOperatingSystems(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries := []OSSummary{}
		for _, os := range reg.All() {
			summary, err := NewOSSummary(os)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}
			summaries = append(summaries, summary)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"total":   len(summaries),
			"data":    summaries,
		})
	}
}

// requireOS looks a registered OS up by label, writing the 404 envelope on miss.
func requireOS(c *fiber.Ctx, reg *resolver.Registry) *resolver.OS {
	label := c.Params("label")
	os := reg.ByLabel(label)
	if os == nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "unknown operating system: " + label,
		})
	}
	return os
}

// GetReleases handles GET requests listing the releases of one OS.
// The optional status query parameter narrows to supported or retired.
func GetReleases(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		os := requireOS(c, reg)
		if os == nil {
			return nil
		}

		cat, err := os.Catalog()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		now := time.Now().UTC()
		var releases []*model.Release
		switch c.Query("status") {
		case "supported":
			releases = cat.SupportedAt(now)
		case "retired":
			releases = cat.RetiredAt(now)
		default:
			releases = cat.All()
		}

		views := []ReleaseView{}
		for _, release := range releases {
			views = append(views, NewReleaseView(release, now))
		}

		return c.JSON(fiber.Map{
			"success": true,
			"total":   len(views),
			"data":    views,
		})
	}
}

// GetLatestRelease handles GET requests for the flagged latest release of an OS.
func GetLatestRelease(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		os := requireOS(c, reg)
		if os == nil {
			return nil
		}

		cat, err := os.Catalog()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		latest := cat.Latest()
		if latest == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "no release flagged latest for " + os.Label,
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data":    NewReleaseView(latest, time.Now().UTC()),
		})
	}
}

// GetReleaseSupport handles GET requests for the support window of one release
// version. The optional channel query parameter selects a single channel.
func GetReleaseSupport(reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		os := requireOS(c, reg)
		if os == nil {
			return nil
		}

		version, err := model.ParseVersion(c.Params("version"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		cat, err := os.Catalog()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		candidates := cat.GetVersion(version)
		if len(candidates) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "no cataloged release for version " + version.Key(),
			})
		}

		now := time.Now().UTC()
		channel := c.Query("channel")

		data := []fiber.Map{}
		for _, release := range candidates {
			entry := fiber.Map{
				"id":      release.ID(),
				"label":   release.Label,
				"support": release.Support.ToRecord(now),
			}
			if channel != "" {
				entry["details"] = release.SupportDetailsForAt(now, channel)
				if window, ok := release.Support.Channel(channel); ok {
					entry["status"] = window.StatusAt(now)
				}
			}
			data = append(data, entry)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"total":   len(data),
			"data":    data,
		})
	}
}

// GetResolutions handles GET requests listing stored resolutions for an OS.
func GetResolutions(db database.DBConnection, reg *resolver.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		os := requireOS(c, reg)
		if os == nil {
			return nil
		}

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit <= 0 {
			limit = 50
		}

		resolutions, err := database.FindResolutionsByOS(context.Background(), db.Database, os.Label, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"total":   len(resolutions),
			"data":    resolutions,
		})
	}
}
