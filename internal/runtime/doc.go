// SPDX-License-Identifier: MPL-2.0

// Package runtime executes Python scripts with the active environment's
// interpreter. It owns exit-code semantics, dotenv loading for the --env-file
// flag, and the captured/streamed result types. Execution never mutates
// activation state; cancellation goes through the caller's context.
package runtime
