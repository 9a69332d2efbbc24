// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// cluster.go - KubernetesCluster and its single-use ClusterBuilder.

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// KubernetesCluster is an immutable cluster descriptor produced by
// ClusterBuilder.Build. Fields are read through accessors so a caller cannot
// change a finalized value.
type KubernetesCluster struct {
	name        string
	version     string
	autoUpgrade bool
	nodePool    *string
}

// Name returns the cluster name.
func (c KubernetesCluster) Name() string { return c.name }

// Version returns the Kubernetes version as supplied to the builder.
func (c KubernetesCluster) Version() string { return c.version }

// AutoUpgrade reports whether automatic upgrades are enabled.
func (c KubernetesCluster) AutoUpgrade() bool { return c.autoUpgrade }

// NodePool returns the node pool and whether one was configured.
func (c KubernetesCluster) NodePool() (string, bool) {
	if c.nodePool == nil {
		return "", false
	}
	return *c.nodePool, true
}

// String renders the cluster in a compact single-line form.
func (c KubernetesCluster) String() string {
	pool := "<none>"
	if c.nodePool != nil {
		pool = *c.nodePool
	}
	return fmt.Sprintf("KubernetesCluster{name=%s version=%s autoUpgrade=%t nodePool=%s}",
		c.name, c.version, c.autoUpgrade, pool)
}

type clusterManifest struct {
	Name        string  `yaml:"name"`
	Version     string  `yaml:"version"`
	AutoUpgrade bool    `yaml:"autoUpgrade"`
	NodePool    *string `yaml:"nodePool,omitempty"`
}

// Manifest renders the cluster as a YAML document. An unset node pool is omitted.
func (c KubernetesCluster) Manifest() ([]byte, error) {
	out, err := yaml.Marshal(clusterManifest{
		Name:        c.name,
		Version:     c.version,
		AutoUpgrade: c.autoUpgrade,
		NodePool:    c.nodePool,
	})
	if err != nil {
		return nil, fmt.Errorf("builder: marshal manifest for %q: %w", c.name, err)
	}
	return out, nil
}

// ClusterBuilder accumulates the settings for one KubernetesCluster.
// It is single-use: after a successful Build every setter is ignored and
// Build returns ErrBuilderConsumed.
type ClusterBuilder struct {
	name        string
	version     string
	autoUpgrade *bool
	nodePool    *string
	consumed    bool
}

// NewClusterBuilder starts a builder with the two required fields.
// Surrounding whitespace is trimmed; validation happens in Build.
func NewClusterBuilder(name, version string) *ClusterBuilder {
	return &ClusterBuilder{
		name:    strings.TrimSpace(name),
		version: strings.TrimSpace(version),
	}
}

// AutoUpgrade sets the optional auto-upgrade flag.
func (b *ClusterBuilder) AutoUpgrade(enabled bool) *ClusterBuilder {
	if b.consumed {
		return b
	}
	b.autoUpgrade = &enabled
	return b
}

// NodePool sets the optional node pool name.
func (b *ClusterBuilder) NodePool(pool string) *ClusterBuilder {
	if b.consumed {
		return b
	}
	b.nodePool = &pool
	return b
}

// Build validates the collected settings and returns the finalized cluster.
// All validation failures are reported together.
func (b *ClusterBuilder) Build() (KubernetesCluster, error) {
	if b.consumed {
		return KubernetesCluster{}, ErrBuilderConsumed
	}

	var errs []error
	if err := validate.Var(b.name, "required,hostname_rfc1123"); err != nil {
		errs = append(errs, fmt.Errorf("%w %q: %v", ErrInvalidName, b.name, err))
	}
	if _, err := semver.NewVersion(b.version); err != nil {
		errs = append(errs, fmt.Errorf("%w %q: %v", ErrInvalidVersion, b.version, err))
	}
	if len(errs) > 0 {
		return KubernetesCluster{}, errors.Join(errs...)
	}

	c := KubernetesCluster{
		name:    b.name,
		version: b.version,
	}
	if b.autoUpgrade != nil {
		c.autoUpgrade = *b.autoUpgrade
	}
	if b.nodePool != nil {
		pool := *b.nodePool
		c.nodePool = &pool
	}
	b.consumed = true

	return c, nil
}
