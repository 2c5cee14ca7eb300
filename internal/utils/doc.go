// Package utils contains small shared helpers used across the module:
// JSON stringification for log output, string truncation, and a
// defer-friendly closer that logs instead of returning errors.
package utils
