package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chatnav/internal/dump"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the accessibility tree for debugging",
	Long:  "Walk the content root breadth-first and print every named node with its depth and role. Output is plain text regardless of --format.",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Int("depth", 8, "Max depth to walk")
}

func runDump(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	_, err = fmt.Fprint(os.Stdout, dump.Tree(engine, nil, depth))
	return err
}
