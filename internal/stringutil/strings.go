// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string matching helpers for tuihub.
package stringutil

import "strings"

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// ContainsAnyIgnoreCase checks if substr occurs case-insensitively in any
// of the provided fields.
func ContainsAnyIgnoreCase(substr string, fields ...string) bool {
	for _, field := range fields {
		if ContainsIgnoreCase(field, substr) {
			return true
		}
	}

	return false
}
