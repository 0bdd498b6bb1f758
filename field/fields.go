/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// package field provides utilities to set structure fields. It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

// ToOptionalString returns a pointer to a string
func ToOptionalString(s string) *string {
	return &s
}

// OptionalString returns the value of an optional field or else
// returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalInt returns a pointer to an int
func ToOptionalInt(i int) *int {
	return &i
}

// OptionalInt returns the value of an optional field or else
// returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalBool returns a pointer to a bool
func ToOptionalBool(b bool) *bool {
	return &b
}

// OptionalBool returns the value of an optional field or else
// returns defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalFloat64 returns a pointer to a float64
func ToOptionalFloat64(f float64) *float64 {
	return &f
}

// OptionalFloat64 returns the value of an optional field or else
// returns defaultValue.
func OptionalFloat64(ptr *float64, defaultValue float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}
