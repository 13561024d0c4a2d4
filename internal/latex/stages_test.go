// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/pdiddy/texclean/pkg/types"
)

// runStage applies the named stage to doc with empty metadata and returns
// the output with shelved blocks restored, plus the warnings raised.
func runStage(t *testing.T, name, doc string) (string, []types.Warning) {
	t.Helper()
	for _, s := range Stages() {
		if s.Name == name {
			diags := NewDiagnostics(nil)
			p := NewPass(Metadata{}, diags)
			return p.Restore(s.Apply(doc, p)), diags.Warnings()
		}
	}
	t.Fatalf("no stage named %q", name)
	return "", nil
}

func warningKinds(warnings []types.Warning) []types.WarningKind {
	var kinds []types.WarningKind
	for _, w := range warnings {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}
