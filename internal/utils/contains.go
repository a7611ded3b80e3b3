// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package utils

func Contains[T comparable](slice []T, value T) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Duplicate returns the first value that occurs more than once in slice.
func Duplicate[T comparable](slice []T) (T, bool) {
	seen := make(map[T]struct{}, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}

	var zero T
	return zero, false
}
