package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chatnav/internal/element"
	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var clickCmd = &cobra.Command{
	Use:   "click <region-or-button>",
	Short: "Invoke a region or a named button",
	Long:  "Invoke the default action of a chat region (e.g. disconnect, pinned, threads) or of any named button listed by the buttons command.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
}

type clickResult struct {
	OK      bool        `yaml:"ok"     json:"ok"`
	Action  string      `yaml:"action" json:"action"`
	Target  string      `yaml:"target" json:"target"`
	Element elementInfo `yaml:"element" json:"element"`
}

func runClick(cmd *cobra.Command, args []string) error {
	target := args[0]

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	h := resolveClickTarget(engine, target)
	if h == nil {
		return fmt.Errorf("no region or button matches %q", target)
	}
	if err := h.Invoke(); err != nil {
		return fmt.Errorf("invoke %q: %w", target, err)
	}

	return output.Print(clickResult{
		OK:      true,
		Action:  "click",
		Target:  target,
		Element: describeHandle(h),
	})
}

// resolveClickTarget treats the argument as a region name first, then as
// a case-insensitive substring of a button label.
func resolveClickTarget(engine *finder.Engine, target string) element.Handle {
	if h, known := engine.FindRegion(target); known {
		return h
	}
	want := strings.ToLower(target)
	for _, b := range engine.Buttons() {
		if strings.Contains(strings.ToLower(b.Label), want) {
			return b.Handle
		}
	}
	return nil
}
