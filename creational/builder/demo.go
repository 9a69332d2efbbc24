// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// demo.go - runnable demonstration for the catalog.

package builder

import (
	"fmt"
	"io"
)

// Demo builds a basic, an auto-upgrading and a complete cluster, prints
// their manifests, then builds a burger.
func Demo(w io.Writer) error {
	const (
		name    = "my-cluster"
		version = "1.25.0"
	)

	builds := []struct {
		label string
		b     *ClusterBuilder
	}{
		{"basic", NewClusterBuilder(name, version)},
		{"auto-upgrade", NewClusterBuilder(name, version).AutoUpgrade(true)},
		{"complete", NewClusterBuilder(name, version).AutoUpgrade(true).NodePool("Node1")},
	}

	for _, bl := range builds {
		c, err := bl.b.Build()
		if err != nil {
			return fmt.Errorf("build %s cluster: %w", bl.label, err)
		}
		m, err := c.Manifest()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "# %s\n%s", bl.label, m)
	}

	b := NewBurgerBuilder().AddItem1("Item1").AddItem2("Item2").Build()
	fmt.Fprintf(w, "%+v\n", b)

	return nil
}
