package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List servers in the sidebar",
	Long:  "List the entries of the server sidebar, with any voice participants shown under each.",
	RunE:  runServers,
}

func init() {
	rootCmd.AddCommand(serversCmd)
}

type serverInfo struct {
	Name         string   `yaml:"name"                   json:"name"`
	Voice        bool     `yaml:"voice"                  json:"voice"`
	Participants []string `yaml:"participants,omitempty" json:"participants,omitempty"`
}

type serversResult struct {
	OK      bool         `yaml:"ok"      json:"ok"`
	Action  string       `yaml:"action"  json:"action"`
	Servers []serverInfo `yaml:"servers" json:"servers"`
	Total   int          `yaml:"total"   json:"total"`
}

func runServers(cmd *cobra.Command, args []string) error {
	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	items := engine.ServerItems(nil)
	if items == nil {
		return fmt.Errorf("server list not found")
	}

	infos := make([]serverInfo, 0, len(items))
	for _, item := range items {
		participants := finder.ServerVoiceParticipants(item)
		infos = append(infos, serverInfo{
			Name:         item.Name(),
			Voice:        len(participants) > 0,
			Participants: participants,
		})
	}

	return output.Print(serversResult{
		OK:      true,
		Action:  "servers",
		Servers: infos,
		Total:   len(infos),
	})
}
