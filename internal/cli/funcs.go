package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numint/internal/catalog"
)

// FuncInfo describes one catalog entry in command output.
type FuncInfo struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}

// FuncList is the payload of the funcs command.
type FuncList []FuncInfo

// String renders one aligned line per function.
func (l FuncList) String() string {
	var b strings.Builder
	for _, f := range l {
		fmt.Fprintf(&b, "%-10s %s\n", f.Name, f.Formula)
	}

	return b.String()
}

// NewFuncsCommand creates the funcs command.
func NewFuncsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List catalog functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.Entries()
			list := make(FuncList, len(entries))
			for i, e := range entries {
				list[i] = FuncInfo{Name: e.Name, Formula: e.Formula}
			}

			return rootOpts.formatter(cmd).Success(list)
		},
	}
}
