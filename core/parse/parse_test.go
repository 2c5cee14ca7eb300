package parse

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Site  string `json:"site"`
	Limit int    `json:"limit"`
}

func TestParseStringAs_Primitives(t *testing.T) {
	text, err := ParseStringAs[string]("hello")
	if err != nil || text != "hello" {
		t.Errorf("expected 'hello', got %q (err: %v)", text, err)
	}

	number, err := ParseStringAs[int]("42")
	if err != nil || number != 42 {
		t.Errorf("expected 42, got %d (err: %v)", number, err)
	}

	flag, err := ParseStringAs[bool]("true")
	if err != nil || !flag {
		t.Errorf("expected true, got %v (err: %v)", flag, err)
	}

	ratio, err := ParseStringAs[float64]("3.5")
	if err != nil || ratio != 3.5 {
		t.Errorf("expected 3.5, got %f (err: %v)", ratio, err)
	}
}

func TestParseStringAs_Struct(t *testing.T) {
	input, err := ParseStringAs[sampleInput](`{"site":"example.com","limit":50}`)
	if err != nil {
		t.Fatalf("ParseStringAs failed: %v", err)
	}
	if input.Site != "example.com" || input.Limit != 50 {
		t.Errorf("unexpected result: %+v", input)
	}
}

func TestParseStringAs_RepairsMalformedJSON(t *testing.T) {
	input, err := ParseStringAs[sampleInput](`{site: 'example.com', limit: 50,}`)
	if err != nil {
		t.Fatalf("expected repaired parse to succeed, got: %v", err)
	}
	if input.Site != "example.com" || input.Limit != 50 {
		t.Errorf("unexpected result after repair: %+v", input)
	}
}

func TestParseStringAs_InvalidPrimitive(t *testing.T) {
	_, err := ParseStringAs[int]("not-a-number")
	if err == nil {
		t.Error("expected error for invalid int")
	}
	if !strings.Contains(err.Error(), "int") {
		t.Errorf("expected error to mention int, got: %v", err)
	}
}

func TestValueAs_DirectType(t *testing.T) {
	original := map[string]any{"a": 1.0}
	converted, err := ValueAs[map[string]any](original)
	if err != nil {
		t.Fatalf("ValueAs failed: %v", err)
	}
	if converted["a"] != 1.0 {
		t.Errorf("unexpected value: %v", converted["a"])
	}
}

func TestValueAs_MapToStruct(t *testing.T) {
	payload := map[string]any{"site": "example.com", "limit": 25.0}
	converted, err := ValueAs[sampleInput](payload)
	if err != nil {
		t.Fatalf("ValueAs failed: %v", err)
	}
	if converted.Site != "example.com" || converted.Limit != 25 {
		t.Errorf("unexpected result: %+v", converted)
	}
}

func TestValueAs_StringPayload(t *testing.T) {
	converted, err := ValueAs[sampleInput](`{"site":"example.com"}`)
	if err != nil {
		t.Fatalf("ValueAs failed: %v", err)
	}
	if converted.Site != "example.com" {
		t.Errorf("unexpected result: %+v", converted)
	}
}

func TestValueAs_Nil(t *testing.T) {
	_, err := ValueAs[sampleInput](nil)
	if err == nil {
		t.Error("expected error for nil value")
	}
}
