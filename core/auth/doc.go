// Package auth resolves the authentication mode for a Moz API credential
// and computes request signatures.
//
// A credential is an opaque string. When it base64-decodes into a single
// "accessID:secretKey" pair the resolver retains both halves and can compute
// HMAC-SHA1 signatures; otherwise the credential is kept as a raw token.
// The decision is made once, at construction, and never revisited.
package auth
