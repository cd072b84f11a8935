package cmd

import (
	"github.com/spf13/cobra"

	"chatnav/internal/output"
)

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "List named buttons near the top of the tree",
	Long:  "List the named buttons reachable from the window's top levels and the server landmark, for discovering invokable controls.",
	RunE:  runButtons,
}

func init() {
	rootCmd.AddCommand(buttonsCmd)
}

type buttonsResult struct {
	OK      bool       `yaml:"ok"      json:"ok"`
	Action  string     `yaml:"action"  json:"action"`
	Buttons []areaInfo `yaml:"buttons" json:"buttons"`
	Total   int        `yaml:"total"   json:"total"`
}

func runButtons(cmd *cobra.Command, args []string) error {
	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	buttons := engine.Buttons()
	infos := make([]areaInfo, 0, len(buttons))
	for _, b := range buttons {
		infos = append(infos, areaInfo{Label: b.Label, Element: describeHandle(b.Handle)})
	}

	return output.Print(buttonsResult{
		OK:      true,
		Action:  "buttons",
		Buttons: infos,
		Total:   len(infos),
	})
}
