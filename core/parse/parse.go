package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs attempts to parse a string into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct
// conversion. For complex types (structs, maps, slices), it attempts JSON
// unmarshaling. If JSON unmarshaling fails, it will attempt to repair the
// JSON string using jsonrepair and retry the unmarshaling operation, which
// keeps capability inputs usable even when a caller hands over slightly
// malformed JSON (single quotes, trailing commas, unquoted keys).
//
// Example usage:
//
//	type SiteInput struct {
//	    Site string `json:"site"`
//	}
//
//	// Parse a valid JSON string
//	input, err := ParseStringAs[SiteInput](`{"site":"example.com"}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	input, err := ParseStringAs[SiteInput](`{site: 'example.com'}`)
//
//	// Parse primitive types
//	num, err := ParseStringAs[int]("42")
//	flag, err := ParseStringAs[bool]("true")
func ParseStringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		// For structs, slices, maps, and other complex types, use JSON unmarshaling.
		err := json.Unmarshal([]byte(content), &result)
		if err != nil {
			// If JSON unmarshaling fails, attempt to repair the JSON and retry.
			repairedJSON, repairErr := jsonrepair.JSONRepair(content)
			if repairErr != nil {
				return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}

			err = json.Unmarshal([]byte(repairedJSON), &result)
			if err != nil {
				return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
			}
		}
		return result, nil
	}
}

// ValueAs converts an opaque structured value (typically a decoded JSON
// payload held as map[string]any or []any) into the specified type T.
//
// Remote payloads in this module are deliberately kept untyped; ValueAs is
// the one sanctioned way to project the few fields a caller actually reads
// into a typed view, leaving the rest of the payload untouched.
func ValueAs[T any](value any) (T, error) {
	var result T

	if value == nil {
		return result, fmt.Errorf("cannot convert nil value to %T", result)
	}

	// Direct assertion covers values that already have the target type.
	if typed, isTargetType := value.(T); isTargetType {
		return typed, nil
	}

	// Strings go through ParseStringAs so repairable JSON still converts.
	if text, isString := value.(string); isString {
		return ParseStringAs[T](text)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("failed to marshal value for conversion to %T: %w", result, err)
	}

	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, fmt.Errorf("failed to convert value to %T: %w", result, err)
	}

	return result, nil
}
