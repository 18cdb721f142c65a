package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numint/gausslegendre"
)

// RuleOutput is the payload of the rule command.
type RuleOutput struct {
	Degree  int       `json:"degree"`
	Nodes   []float64 `json:"nodes"`
	Weights []float64 `json:"weights"`
}

// String renders one "i node weight" line per node.
func (r RuleOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "degree: %d\n", r.Degree)
	for i := range r.Nodes {
		fmt.Fprintf(&b, "%3d  %+.12f  %.12f\n", i, r.Nodes[i], r.Weights[i])
	}

	return b.String()
}

// NewRuleCommand creates the rule command.
func NewRuleCommand(rootOpts *RootOptions) *cobra.Command {
	var degree int

	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Print Gauss-Legendre nodes and weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			rootOpts.logger().Debug("solve legendre rule", "degree", degree)

			rule, err := gausslegendre.Solve(degree)
			if err != nil {
				return formatter.Fail(classify("rule", err))
			}

			return formatter.Success(RuleOutput{Degree: rule.Degree, Nodes: rule.Nodes, Weights: rule.Weights})
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "n", 5, "number of nodes")

	return cmd
}
