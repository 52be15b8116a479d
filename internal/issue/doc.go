// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting: ActionableError
// carries operation/resource/suggestion context through the error chain,
// and the issue registry maps failure classes to rendered markdown help
// pages.
package issue
