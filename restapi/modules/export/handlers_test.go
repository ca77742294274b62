package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/config"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	reg := config.DefaultRegistry()

	app := fiber.New()
	app.Get("/export/catalog.csv", GetCatalogCSV(reg))
	app.Get("/export/catalog.json", GetCatalogJSON(reg))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGetCatalogCSV(t *testing.T) {
	app := testApp(t)

	resp, raw := get(t, app, "/export/catalog.csv")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, csvHeader, rows[0])

	// 7 windows releases x 2 channels, 4 server and 3 rhel releases x 1 channel
	assert.Len(t, rows, 1+7*2+4+3)

	seen := map[string]bool{}
	for _, row := range rows[1:] {
		require.Len(t, row, len(csvHeader))
		seen[row[0]] = true
	}
	assert.True(t, seen["windows"])
	assert.True(t, seen["windows-server"])
	assert.True(t, seen["red-hat-enterprise-linux"])
}

func TestGetCatalogJSON(t *testing.T) {
	app := testApp(t)

	resp, raw := get(t, app, "/export/catalog.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Len(t, data["windows"], 7)
	assert.Len(t, data["windows-server"], 4)

	// Every exported record carries the snapshot contract fields.
	for _, raw := range data["windows"].([]interface{}) {
		rec := raw.(map[string]interface{})
		require.Contains(t, rec, "version")
		require.Contains(t, rec, "releaseDate")
		require.Contains(t, rec, "supportChannels")
		require.Contains(t, rec, "isSupported")
	}
	assert.Len(t, data["red-hat-enterprise-linux"], 3)
}
