// Package database - Handles all interaction with ArangoDB
package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oslc/oslc-backend/model"
)

var logger = InitLogger() // setup the logger

// DBConnection is the structure that defined the database engine and collections
type DBConnection struct {
	Collections map[string]arangodb.Collection
	Database    arangodb.Database
}

// Define a struct to hold the index definition
type indexConfig struct {
	Collection string
	IdxName    string
	IdxField   string
}

var initDone = false          // has the data been initialized
var dbConnection DBConnection // database connection definition

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

func dbConnectionConfig(endpoint connection.Endpoint, dbuser string, dbpass string) connection.HttpConfiguration {
	return connection.HttpConfiguration{
		Authentication: connection.NewBasicAuth(dbuser, dbpass),
		Endpoint:       endpoint,
		ContentType:    connection.ApplicationJSON,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // #nosec G402
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 90 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// InitializeDatabase is the function for connecting to the db engine, creating the database and collections
func InitializeDatabase() DBConnection {
	const initialInterval = 10 * time.Second
	const maxInterval = 2 * time.Minute

	var db arangodb.Database
	var collections map[string]arangodb.Collection
	const databaseName = "oslc"

	ctx := context.Background()

	if initDone {
		return dbConnection
	}

	False := false
	True := true
	dbhost := GetEnvDefault("ARANGO_HOST", "localhost")
	dbport := GetEnvDefault("ARANGO_PORT", "8529")
	dbuser := GetEnvDefault("ARANGO_USER", "root")
	dbpass := GetEnvDefault("ARANGO_PASS", "mypassword")
	dburl := GetEnvDefault("ARANGO_URL", "http://"+dbhost+":"+dbport)

	var client arangodb.Client

	//
	// Database connection with backoff retry
	//

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = 0 // Set to 0 for indefinite retries

	err := backoff.RetryNotify(func() error {
		fmt.Println("Attempting to connect to ArangoDB")
		endpoint := connection.NewRoundRobinEndpoints([]string{dburl})
		conn := connection.NewHttpConnection(dbConnectionConfig(endpoint, dbuser, dbpass))

		client = arangodb.NewClient(conn)

		// Ask the version of the server
		versionInfo, err := client.Version(context.Background())
		if err != nil {
			return err
		}

		logger.Sugar().Infof("Database has version '%s' and license '%s'\n", versionInfo.Version, versionInfo.License)
		return nil

	}, bo, func(err error, _ time.Duration) {
		fmt.Printf("Retrying connection to ArangoDB: %v\n", err)
	})

	if err != nil {
		logger.Sugar().Fatalf("Backoff Error %v\n", err)
	}

	//
	// Database creation
	//

	exists := false
	dblist, _ := client.Databases(ctx)

	for _, dbinfo := range dblist {
		if dbinfo.Name() == databaseName {
			exists = true
			break
		}
	}

	if exists {
		var options arangodb.GetDatabaseOptions
		if db, err = client.GetDatabase(ctx, databaseName, &options); err != nil {
			logger.Sugar().Fatalf("Failed to get Database: %v", err)
		}
	} else {
		if db, err = client.CreateDatabase(ctx, databaseName, nil); err != nil {
			logger.Sugar().Fatalf("Failed to create Database: %v", err)
		}
	}

	//
	// Collection creation for document storage
	//

	collections = make(map[string]arangodb.Collection)
	collectionNames := []string{"asset", "resolution", "release_snapshot", "metadata"}

	for _, collectionName := range collectionNames {
		var col arangodb.Collection

		exists, _ = db.CollectionExists(ctx, collectionName)
		if exists {
			var options arangodb.GetCollectionOptions
			if col, err = db.GetCollection(ctx, collectionName, &options); err != nil {
				logger.Sugar().Fatalf("Failed to use collection: %v", err)
			}
		} else {
			if col, err = db.CreateCollectionV2(ctx, collectionName, nil); err != nil {
				logger.Sugar().Fatalf("Failed to create collection: %v", err)
			}
		}

		collections[collectionName] = col
	}

	//
	// Edge collection creation
	//

	edgeCollectionNames := []string{"asset2resolution"}

	for _, edgeCollectionName := range edgeCollectionNames {
		var col arangodb.Collection

		exists, _ = db.CollectionExists(ctx, edgeCollectionName)
		if exists {
			var options arangodb.GetCollectionOptions
			if col, err = db.GetCollection(ctx, edgeCollectionName, &options); err != nil {
				logger.Sugar().Fatalf("Failed to use edge collection: %v", err)
			}
		} else {
			edgeType := arangodb.CollectionTypeEdge
			if col, err = db.CreateCollectionV2(ctx, edgeCollectionName, &arangodb.CreateCollectionPropertiesV2{
				Type: &edgeType,
			}); err != nil {
				logger.Sugar().Fatalf("Failed to create edge collection: %v", err)
			}
		}

		collections[edgeCollectionName] = col
	}

	//
	// Index creation for document collections
	//

	idxList := []indexConfig{
		// Asset collection indexes - inventory rows come in keyed by hostname
		{Collection: "asset", IdxName: "asset_hostname", IdxField: "hostname"},
		{Collection: "asset", IdxName: "asset_os_text", IdxField: "os_text"},
		{Collection: "asset", IdxName: "asset_seen_at", IdxField: "seen_at"},
		{Collection: "asset", IdxName: "asset_source", IdxField: "source"},

		// Resolution collection indexes for fleet reporting
		{Collection: "resolution", IdxName: "resolution_os_label", IdxField: "os_label"},
		{Collection: "resolution", IdxName: "resolution_os_family", IdxField: "os_family"},
		{Collection: "resolution", IdxName: "resolution_release_id", IdxField: "release_id"},
		{Collection: "resolution", IdxName: "resolution_edition", IdxField: "edition"},
		{Collection: "resolution", IdxName: "resolution_supported", IdxField: "supported"},
		{Collection: "resolution", IdxName: "resolution_resolved_at", IdxField: "resolved_at"},

		// Release snapshot indexes for lifecycle queries
		{Collection: "release_snapshot", IdxName: "snapshot_software", IdxField: "software"},
		{Collection: "release_snapshot", IdxName: "snapshot_label", IdxField: "label"},

		// Edge collection indexes for asset to resolution traversals
		{Collection: "asset2resolution", IdxName: "asset2resolution_from", IdxField: "_from"},
		{Collection: "asset2resolution", IdxName: "asset2resolution_to", IdxField: "_to"},
	}

	for _, idx := range idxList {
		found := false

		if indexes, err := collections[idx.Collection].Indexes(ctx); err == nil {
			for _, index := range indexes {
				if idx.IdxName == index.Name {
					found = true
					break
				}
			}
		}

		if !found {
			indexOptions := arangodb.CreatePersistentIndexOptions{
				Unique: &False,
				Sparse: &False,
				Name:   idx.IdxName,
			}

			_, _, err = collections[idx.Collection].EnsurePersistentIndex(ctx, []string{idx.IdxField}, &indexOptions)
			if err != nil {
				logger.Sugar().Fatalln("Error creating index:", err)
			} else {
				logger.Sugar().Infof("Created index: %s on %s.%s", idx.IdxName, idx.Collection, idx.IdxField)
			}
		}
	}

	//
	// Create composite indexes (multi-field indexes)
	//

	// Composite index for resolution lookup by OS + release
	resolutionOSReleaseIdx := "resolution_os_release"
	found := false
	if indexes, err := collections["resolution"].Indexes(ctx); err == nil {
		for _, index := range indexes {
			if resolutionOSReleaseIdx == index.Name {
				found = true
				break
			}
		}
	}
	if !found {
		compositeIdxOptions := arangodb.CreatePersistentIndexOptions{
			Unique: &False,
			Sparse: &False,
			Name:   resolutionOSReleaseIdx,
		}
		_, _, err = collections["resolution"].EnsurePersistentIndex(ctx, []string{"os_label", "release_id"}, &compositeIdxOptions)
		if err != nil {
			logger.Sugar().Fatalln("Error creating composite index:", err)
		} else {
			logger.Sugar().Infof("Created composite index: %s on resolution", resolutionOSReleaseIdx)
		}
	}

	// Unique index on release snapshot software + label to prevent duplicates
	snapshotUniqueIdx := "snapshot_software_label_unique"
	found = false
	if indexes, err := collections["release_snapshot"].Indexes(ctx); err == nil {
		for _, index := range indexes {
			if snapshotUniqueIdx == index.Name {
				found = true
				break
			}
		}
	}
	if !found {
		uniqueIdxOptions := arangodb.CreatePersistentIndexOptions{
			Unique: &True,
			Sparse: &False,
			Name:   snapshotUniqueIdx,
		}
		_, _, err = collections["release_snapshot"].EnsurePersistentIndex(ctx, []string{"software", "label"}, &uniqueIdxOptions)
		if err != nil {
			logger.Sugar().Fatalln("Error creating unique index on release_snapshot:", err)
		} else {
			logger.Sugar().Infof("Created unique index: %s on release_snapshot", snapshotUniqueIdx)
		}
	}

	initDone = true

	dbConnection = DBConnection{
		Database:    db,
		Collections: collections,
	}

	logger.Sugar().Infof("Database initialization complete")

	return dbConnection
}

// SaveAsset stores an inventory record and returns its document key.
func SaveAsset(ctx context.Context, conn DBConnection, asset *model.InventoryRecord) (string, error) {
	meta, err := conn.Collections["asset"].CreateDocument(ctx, asset)
	if err != nil {
		return "", fmt.Errorf("saving asset: %w", err)
	}
	return meta.Key, nil
}

// SaveResolution stores a resolution record and, when assetKey is set, links
// it to the originating asset document.
func SaveResolution(ctx context.Context, conn DBConnection, resolution *model.ResolutionRecord, assetKey string) (string, error) {
	meta, err := conn.Collections["resolution"].CreateDocument(ctx, resolution)
	if err != nil {
		return "", fmt.Errorf("saving resolution: %w", err)
	}

	if assetKey != "" {
		edge := map[string]interface{}{
			"_from": "asset/" + assetKey,
			"_to":   "resolution/" + meta.Key,
		}
		if _, err := conn.Collections["asset2resolution"].CreateDocument(ctx, edge); err != nil {
			return meta.Key, fmt.Errorf("linking resolution to asset: %w", err)
		}
	}

	return meta.Key, nil
}

// SaveReleaseSnapshot upserts a release snapshot keyed by software + label.
func SaveReleaseSnapshot(ctx context.Context, conn DBConnection, snapshot map[string]interface{}) error {
	query := `
		UPSERT { software: @software, label: @label }
			INSERT @doc
			UPDATE @doc
			IN release_snapshot
	`
	bindVars := map[string]interface{}{
		"software": snapshot["software"],
		"label":    snapshot["label"],
		"doc":      snapshot,
	}

	cursor, err := conn.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return fmt.Errorf("saving release snapshot: %w", err)
	}
	defer cursor.Close()
	return nil
}

// FindRecentResolutions returns the newest stored resolutions across all
// operating systems.
func FindRecentResolutions(ctx context.Context, db arangodb.Database, limit int) ([]model.ResolutionRecord, error) {
	query := `
		FOR r IN resolution
			SORT r.resolved_at DESC
			LIMIT @limit
			RETURN r
	`
	cursor, err := db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"limit": limit},
	})
	if err != nil {
		return nil, fmt.Errorf("querying resolutions: %w", err)
	}
	defer cursor.Close()

	resolutions := []model.ResolutionRecord{}
	for cursor.HasMore() {
		var rec model.ResolutionRecord
		if _, err := cursor.ReadDocument(ctx, &rec); err != nil {
			return nil, err
		}
		resolutions = append(resolutions, rec)
	}
	return resolutions, nil
}

// FindResolutionsByOS returns the stored resolutions for one OS label,
// newest first.
func FindResolutionsByOS(ctx context.Context, db arangodb.Database, osLabel string, limit int) ([]model.ResolutionRecord, error) {
	query := `
		FOR r IN resolution
			FILTER r.os_label == @os_label
			SORT r.resolved_at DESC
			LIMIT @limit
			RETURN r
	`
	bindVars := map[string]interface{}{
		"os_label": osLabel,
		"limit":    limit,
	}

	cursor, err := db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var out []model.ResolutionRecord
	for cursor.HasMore() {
		var rec model.ResolutionRecord
		if _, err := cursor.ReadDocument(ctx, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// CountResolutionsBySupport returns how many stored resolutions landed on a
// supported release and how many on a retired one.
func CountResolutionsBySupport(ctx context.Context, db arangodb.Database) (supported int, retired int, err error) {
	query := `
		FOR r IN resolution
			FILTER r.supported != null
			COLLECT s = r.supported WITH COUNT INTO cnt
			RETURN { supported: s, count: cnt }
	`

	cursor, err := db.Query(ctx, query, &arangodb.QueryOptions{})
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close()

	for cursor.HasMore() {
		var row struct {
			Supported bool `json:"supported"`
			Count     int  `json:"count"`
		}
		if _, err := cursor.ReadDocument(ctx, &row); err != nil {
			return 0, 0, err
		}
		if row.Supported {
			supported = row.Count
		} else {
			retired = row.Count
		}
	}
	return supported, retired, nil
}

// FindAssetByHostname returns the key of the newest asset document for a
// hostname, or an empty string when none exists.
func FindAssetByHostname(ctx context.Context, db arangodb.Database, hostname string) (string, error) {
	query := `
		FOR a IN asset
			FILTER a.hostname == @hostname
			SORT a.seen_at DESC
			LIMIT 1
			RETURN a._key
	`
	bindVars := map[string]interface{}{
		"hostname": hostname,
	}

	cursor, err := db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return "", err
	}
	defer cursor.Close()

	if cursor.HasMore() {
		var key string
		_, err := cursor.ReadDocument(ctx, &key)
		if err != nil {
			return "", err
		}
		return key, nil
	}

	return "", nil
}
