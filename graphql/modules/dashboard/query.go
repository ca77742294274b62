// Package dashboard defines the GraphQL queries for the dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/resolver"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema
func GetQueryFields(db database.DBConnection, reg *resolver.Registry) graphql.Fields {
	return graphql.Fields{
		// Section 1: Top Cards (Overview)
		"dashboardOverview": &graphql.Field{
			Type: DashboardOverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(reg)
			},
		},
		// Section 2: Charts (Resolution support breakdown)
		"dashboardResolutionStatus": &graphql.Field{
			Type: ResolutionStatusType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveResolutionStatus(db)
			},
		},
		// Section 3: Tables (Support ending soonest)
		"dashboardRetiringReleases": &graphql.Field{
			Type: graphql.NewList(RetiringReleaseType),
			Args: graphql.FieldConfigArgument{
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 5},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit := p.Args["limit"].(int)
				return ResolveRetiringReleases(reg, limit)
			},
		},
		// Section 4: Trend Line (Resolutions per day)
		"dashboardResolutionTrend": &graphql.Field{
			Type: graphql.NewList(ResolutionTrendType),
			Args: graphql.FieldConfigArgument{
				"days": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 90},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				days := p.Args["days"].(int)
				return ResolveResolutionTrend(db, days)
			},
		},
	}
}
