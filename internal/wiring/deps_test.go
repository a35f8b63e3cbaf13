package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it
// and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers a dependency ID from the package of the type
	// passed to graft.Dep. Every adapter node here provides a type from the
	// shared ports package, so the inferred IDs never match the node IDs.
	t.Skip("graft cannot map ports.* dependencies back to their node IDs")
	graft.AssertDepsValid(t, "../../internal")
}
