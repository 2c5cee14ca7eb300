// Package api provides typed wrappers over the Moz JSON-RPC method catalog.
//
// Each wrapper maps a semantic call (keyword, site, url or link query plus
// an optional flat options record) to a fixed remote method name and nested
// params object, applies the documented defaults (locale en-US, device
// desktop, engine google, per-call scopes and limits), and delegates to the
// rpc client. Results are returned as opaque values, exactly as the remote
// produced them.
package api
