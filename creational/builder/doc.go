// Package builder demonstrates the Builder pattern.
//
// Instead of a constructor per combination of optional arguments, a mutable
// builder collects the required values up front and the optional ones
// through fluent setters, then Build freezes everything into an immutable
// value.
//
// Overview:
//
//   - ClusterBuilder assembles a KubernetesCluster. Name and Version are
//     required; AutoUpgrade and NodePool are optional and default to false
//     and nil when omitted.
//   - Validation is deferred: setters never fail, problems are collected and
//     reported together by Build as a joined error.
//   - A builder is single-use. A successful Build consumes it: later setters
//     are ignored and a second Build returns ErrBuilderConsumed. A failed
//     Build leaves the builder usable so the caller can correct and retry.
//   - KubernetesCluster.Manifest renders the finished value as YAML
//     (gopkg.in/yaml.v3), omitting nodePool when it was never set.
//   - BurgerBuilder is the minimal variant: value-receiver setters, every
//     field optional, Build cannot fail.
//
// Errors (sentinel):
//
//   - ErrInvalidName     if the cluster name is empty or not an RFC 1123 hostname.
//   - ErrInvalidVersion  if the version does not parse as a semantic version.
//   - ErrBuilderConsumed if Build runs again after a successful Build.
//
// Example:
//
//	c, err := builder.NewClusterBuilder("my-cluster", "1.25.0").
//	    AutoUpgrade(true).
//	    Build()
package builder
