package domain

import "strings"

// CoalesceStr returns the first value that is not blank, trimmed.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// FromPtr returns the first set pointer's value, or fallback when all are nil.
func FromPtr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
