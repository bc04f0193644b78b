// Package schemas holds the JSON Schema documents for artifacts the service loads at start-up.
package schemas

import "embed"

// Catalog and model artifact schema names.
const (
	Catalog     = "catalog.schema.json"
	ForestModel = "forest_model.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
