// Package types defines the entity structs, table names, sentinel errors,
// and service configuration shared across the pokedex storage and serving
// layers.
package types
