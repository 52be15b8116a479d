// SPDX-License-Identifier: MPL-2.0

// Package pyenv discovers, resolves, and activates Python virtual and conda
// environments. Descriptors identify environments by a stable, path-independent
// key; the resolver re-derives an environment's filesystem location when its
// cached path goes stale; the activation state machine applies and rolls back
// PATH and marker-variable overlays for at most one active environment.
package pyenv
