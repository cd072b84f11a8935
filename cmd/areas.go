package cmd

import (
	"github.com/spf13/cobra"

	"chatnav/internal/output"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List the chat regions currently visible",
	Long:  "Enumerate the major chat regions (server list, channel list, messages, members) that can be located right now, in layout order.",
	RunE:  runAreas,
}

func init() {
	rootCmd.AddCommand(areasCmd)
}

type areaInfo struct {
	Label   string      `yaml:"label"   json:"label"`
	Element elementInfo `yaml:"element" json:"element"`
}

type areasResult struct {
	OK     bool       `yaml:"ok"     json:"ok"`
	Action string     `yaml:"action" json:"action"`
	Areas  []areaInfo `yaml:"areas"  json:"areas"`
	Total  int        `yaml:"total"  json:"total"`
}

func runAreas(cmd *cobra.Command, args []string) error {
	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	areas := engine.Areas()
	infos := make([]areaInfo, 0, len(areas))
	for _, a := range areas {
		infos = append(infos, areaInfo{Label: a.Label, Element: describeHandle(a.Handle)})
	}

	return output.Print(areasResult{
		OK:     true,
		Action: "areas",
		Areas:  infos,
		Total:  len(infos),
	})
}
