package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCredential is returned when a signature is requested but the
// credential did not resolve into an access id / secret key pair.
var ErrMissingCredential = errors.New("credential did not resolve to an access id and secret key")

// Resolver holds the authentication configuration derived from one opaque
// credential string. The credential mode is decided exactly once, at
// construction, and is immutable for the resolver's lifetime.
//
// Two modes exist:
//   - key pair: the credential base64-decodes into "accessID:secretKey"
//     (exactly one colon), enabling HMAC signatures via [Resolver.Signature].
//   - raw token: anything else. Decode failures never surface as errors;
//     they simply select this mode.
type Resolver struct {
	token     string
	accessID  string
	secretKey string
}

// NewResolver resolves the authentication mode for the given credential.
// It never fails: credentials that do not decode, or decode into anything
// other than a single colon-separated pair, resolve to raw-token mode.
func NewResolver(credential string) *Resolver {
	resolver := &Resolver{token: credential}

	decoded, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		return resolver
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 2 {
		return resolver
	}

	resolver.accessID = parts[0]
	resolver.secretKey = parts[1]
	return resolver
}

// HasKeyPair reports whether the credential resolved into an
// access id / secret key pair at construction.
func (r *Resolver) HasKeyPair() bool {
	return r.accessID != "" || r.secretKey != ""
}

// AccessID returns the resolved access id, or "" in raw-token mode.
func (r *Resolver) AccessID() string {
	return r.accessID
}

// Signature computes the request signature for the given unix timestamp in
// seconds: base64(HMAC-SHA1("{accessID}\n{timestamp}", secretKey)). The
// digest is deterministic for identical inputs.
//
// Returns [ErrMissingCredential] when the resolver is in raw-token mode.
func (r *Resolver) Signature(timestamp int64) (string, error) {
	if r.accessID == "" || r.secretKey == "" {
		return "", ErrMissingCredential
	}

	mac := hmac.New(sha1.New, []byte(r.secretKey))
	fmt.Fprintf(mac, "%s\n%d", r.accessID, timestamp)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Headers returns the authentication headers for outbound requests.
//
// The raw credential is sent as x-moz-token in both modes; the signature
// path is available through [Resolver.Signature] but is not applied to
// outbound requests.
func (r *Resolver) Headers() map[string]string {
	return map[string]string{"x-moz-token": r.token}
}
