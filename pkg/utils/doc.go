// Package utils provides utility packages for common operations.
//
// This package contains subpackages with utility functions used across
// the yaml-compare codebase:
//
//   - notify: Formatted message display with symbols and colors
//
// These utilities are designed to be simple, focused, and reusable across
// different parts of the application.
package utils
