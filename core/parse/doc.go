// Package parse provides flexible conversion of loosely structured content
// into strongly typed Go values.
//
// [ParseStringAs] parses string content (capability inputs, raw JSON) into a
// target type, repairing malformed JSON when a first unmarshal attempt fails.
// [ValueAs] projects opaque decoded payloads (map[string]any trees returned
// by the remote API) into typed views without validating the rest of the
// payload shape.
package parse
