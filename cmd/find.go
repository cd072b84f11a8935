package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find <region>",
	Short: "Locate a named chat region",
	Long: fmt.Sprintf("Locate a well-known chat region in the app's accessibility tree.\n\nRegions: %s",
		strings.Join(finder.RegionNames(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

// findResult is the top-level output of the find command.
type findResult struct {
	OK      bool        `yaml:"ok"     json:"ok"`
	Action  string      `yaml:"action" json:"action"`
	Region  string      `yaml:"region" json:"region"`
	Element elementInfo `yaml:"element" json:"element"`
}

func runFind(cmd *cobra.Command, args []string) error {
	region := args[0]

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	h, known := engine.FindRegion(region)
	if !known {
		return fmt.Errorf("unknown region %q (use one of: %s)", region, strings.Join(finder.RegionNames(), ", "))
	}
	if h == nil {
		return fmt.Errorf("region %q not found; the UI may not be showing it", region)
	}

	return output.Print(findResult{
		OK:      true,
		Action:  "find",
		Region:  region,
		Element: describeHandle(h),
	})
}
