// Package graphql assembles the root GraphQL schema for the OSLC backend.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/graphql/modules/catalog"
	"github.com/oslc/oslc-backend/graphql/modules/dashboard"
	"github.com/oslc/oslc-backend/resolver"
)

var (
	db       database.DBConnection
	registry *resolver.Registry
)

// InitDB stores the database connection used by the resolvers
func InitDB(conn database.DBConnection) {
	db = conn
}

// InitRegistry stores the OS registry used by the catalog resolvers
func InitRegistry(reg *resolver.Registry) {
	registry = reg
}

// CreateSchema builds the root query schema from the module field sets
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}

	for name, field := range dashboard.GetQueryFields(db, registry) {
		fields[name] = field
	}
	for name, field := range catalog.GetQueryFields(db, registry) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "RootQuery",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
