// Package rpc implements the JSON-RPC 2.0 client used for every remote call
// to the Moz API.
//
// The client builds a versioned request envelope with a globally unique id,
// posts it to one fixed HTTPS endpoint with the resolver's authentication
// headers, and unwraps the response into either an opaque result value, a
// *[APIError] (well-formed remote error envelope), or a *[NetworkError]
// (transport-level failure). Results are never shape-validated: the remote
// schema is externally owned and may evolve.
package rpc
