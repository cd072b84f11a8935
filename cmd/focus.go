package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var focusCmd = &cobra.Command{
	Use:   "focus <region>",
	Short: "Move keyboard focus to a chat region",
	Long:  "Locate a chat region and move keyboard focus into it, falling back to the region's first focusable child when the region itself cannot take focus.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

type focusResult struct {
	OK      bool        `yaml:"ok"     json:"ok"`
	Action  string      `yaml:"action" json:"action"`
	Region  string      `yaml:"region" json:"region"`
	Element elementInfo `yaml:"element" json:"element"`
}

func runFocus(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("region %q not found", region)
	}
	if !engine.FocusElement(h) {
		return fmt.Errorf("could not move focus to %q", region)
	}

	return output.Print(focusResult{
		OK:      true,
		Action:  "focus",
		Region:  region,
		Element: describeHandle(h),
	})
}
