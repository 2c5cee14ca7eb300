// Package tool provides the dispatch layer that maps external capability
// names to typed functions.
//
// A [Tool] binds a name and description to a strongly-typed Go function;
// its Call method parses JSON input, rejects requests with missing required
// fields before any remote call happens, and serializes the result. The
// [Catalog] type offers a thread-safe registry for managing collections of
// tools; use [NewCatalog] or [NewCatalogWithTools] to create one.
package tool
