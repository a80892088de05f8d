package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

// PatternInfo describes one entry of the pattern table.
type PatternInfo struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells int    `json:"cells"`
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns accepted by --pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []PatternInfo
			var sb strings.Builder
			for _, name := range life.Patterns() {
				p, _ := life.Lookup(name)
				infos = append(infos, PatternInfo{Name: p.Name, Rows: p.Rows, Cols: p.Cols, Cells: len(p.Cells)})
				fmt.Fprintf(&sb, "%-10s %2dx%-2d %3d cells\n", p.Name, p.Rows, p.Cols, len(p.Cells))
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Emit(infos, sb.String())
		},
	}
}
