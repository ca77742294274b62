// Package catalog defines the GraphQL queries for the release catalog.
package catalog

import (
	"github.com/graphql-go/graphql"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/resolver"
)

// GetQueryFields returns the catalog queries to be mounted in the root schema
func GetQueryFields(_ database.DBConnection, reg *resolver.Registry) graphql.Fields {
	return graphql.Fields{
		"operatingSystems": &graphql.Field{
			Type: graphql.NewList(OperatingSystemType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOperatingSystems(reg)
			},
		},
		"releases": &graphql.Field{
			Type: graphql.NewList(ReleaseType),
			Args: graphql.FieldConfigArgument{
				"os":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"status": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				osLabel := p.Args["os"].(string)
				status := p.Args["status"].(string)
				return ResolveReleases(reg, osLabel, status)
			},
		},
		"latestRelease": &graphql.Field{
			Type: ReleaseType,
			Args: graphql.FieldConfigArgument{
				"os": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				osLabel := p.Args["os"].(string)
				return ResolveLatestRelease(reg, osLabel)
			},
		},
	}
}
