// Package dashboard defines the GraphQL types for the application dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"
)

// DashboardOverviewType represents the high-level metrics for the top cards
var DashboardOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardOverview",
	Fields: graphql.Fields{
		"total_oses":         &graphql.Field{Type: graphql.Int},
		"total_releases":     &graphql.Field{Type: graphql.Int},
		"supported_releases": &graphql.Field{Type: graphql.Int},
		"retired_releases":   &graphql.Field{Type: graphql.Int},
	},
})

// ResolutionStatusType represents the support breakdown of stored resolutions
var ResolutionStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ResolutionStatus",
	Fields: graphql.Fields{
		"supported": &graphql.Field{Type: graphql.Int},
		"retired":   &graphql.Field{Type: graphql.Int},
	},
})

// RetiringReleaseType represents rows for the "Retiring soon" table
var RetiringReleaseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RetiringRelease",
	Fields: graphql.Fields{
		"os":          &graphql.Field{Type: graphql.String},
		"release":     &graphql.Field{Type: graphql.String},
		"version":     &graphql.Field{Type: graphql.String},
		"channel":     &graphql.Field{Type: graphql.String},
		"end_of_life": &graphql.Field{Type: graphql.String},
		"details":     &graphql.Field{Type: graphql.String},
	},
})

// ResolutionTrendType represents the daily count of resolutions stored
var ResolutionTrendType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ResolutionTrend",
	Fields: graphql.Fields{
		"date":      &graphql.Field{Type: graphql.String},
		"matched":   &graphql.Field{Type: graphql.Int},
		"unmatched": &graphql.Field{Type: graphql.Int},
	},
})
