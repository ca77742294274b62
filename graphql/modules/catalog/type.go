// Package catalog defines the GraphQL types for release catalog queries.
package catalog

import (
	"github.com/graphql-go/graphql"
)

// SupportChannelType represents one support channel of a release
var SupportChannelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SupportChannel",
	Fields: graphql.Fields{
		"channel":     &graphql.Field{Type: graphql.String},
		"lts":         &graphql.Field{Type: graphql.Boolean},
		"end_of_life": &graphql.Field{Type: graphql.String},
		"status":      &graphql.Field{Type: graphql.String},
		"details":     &graphql.Field{Type: graphql.String},
	},
})

// ReleaseType represents one cataloged release and its support state
var ReleaseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Release",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"os":              &graphql.Field{Type: graphql.String},
		"label":           &graphql.Field{Type: graphql.String},
		"version":         &graphql.Field{Type: graphql.String},
		"release_date":    &graphql.Field{Type: graphql.String},
		"latest":          &graphql.Field{Type: graphql.Boolean},
		"link":            &graphql.Field{Type: graphql.String},
		"supported":       &graphql.Field{Type: graphql.Boolean},
		"channels":        &graphql.Field{Type: graphql.NewList(SupportChannelType)},
		"vulnerabilities": &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// OperatingSystemType represents one registered operating system
var OperatingSystemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OperatingSystem",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.String},
		"name":     &graphql.Field{Type: graphql.String},
		"label":    &graphql.Field{Type: graphql.String},
		"editor":   &graphql.Field{Type: graphql.String},
		"family":   &graphql.Field{Type: graphql.String},
		"option":   &graphql.Field{Type: graphql.String},
		"editions": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"releases": &graphql.Field{Type: graphql.Int},
	},
})
