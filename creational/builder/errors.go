// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Each failure wraps its sentinel with %w and quotes the offending value.
//   - Build reports every validation failure at once via errors.Join, so a
//     single error may match both ErrInvalidName and ErrInvalidVersion.
//   - Setters never fail; all validation is deferred to Build.

package builder

import "errors"

// ErrInvalidName indicates a missing cluster name or one that is not an
// RFC 1123 hostname (lower-case alphanumerics and '-', at most 63 chars per
// label). The validator's message is appended as context.
// Usage: if errors.Is(err, ErrInvalidName) { /* ask for another name */ }.
var ErrInvalidName = errors.New("builder: invalid cluster name")

// ErrInvalidVersion indicates a version string that does not parse as
// semantic versioning ("1.25", "v1.25.3" and "1.25.0-rc.1" are accepted).
// Usage: if errors.Is(err, ErrInvalidVersion) { /* reject the manifest */ }.
var ErrInvalidVersion = errors.New("builder: invalid cluster version")

// ErrBuilderConsumed indicates Build was called again on a ClusterBuilder
// whose previous Build succeeded. Start a new builder instead.
var ErrBuilderConsumed = errors.New("builder: builder already consumed")
