package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

// newGolden returns a goldie instance rooted at testdata/golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
}
