// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities,
// centralizing OS-name string literals and small layout conventions.
package platform
