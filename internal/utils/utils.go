package utils

import (
	"unsafe"
)

// B2S converts a byte slice to a string without a copy.
func B2S(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

func Ternary[T any](condition bool, whenTrue T, whenFalse T) T {
	if condition {
		return whenTrue
	}

	return whenFalse
}
