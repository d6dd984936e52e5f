package testutil

import (
	"encoding/json"
	"testing"
)

func Assert[T comparable](t *testing.T, expected T, value T, message string) {
	if expected != value {
		t.Fatalf("%s: expected %v got %v", message, expected, value)
	}
}

func IsNil(t *testing.T, value interface{}, message string) {
	if value != nil {
		t.Fatalf("%s: expected nil got %v", message, value)
	}
}

func IsNotNil(t *testing.T, value interface{}, message string) {
	if value == nil {
		t.Fatalf("%s: expected not nil got nil", message)
	}
}

func DecodeJSON(t *testing.T, data []byte, into interface{}) {
	if err := json.Unmarshal(data, into); err != nil {
		t.Fatalf("bad json body %q: %v", data, err)
	}
}
