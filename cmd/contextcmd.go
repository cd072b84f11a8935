package cmd

import (
	"github.com/spf13/cobra"

	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Report where the user is in the app",
	Long:  "Report the current server, channel or DM, voice channel, mute state, and unread badges, derived from the window title and top-level landmarks.",
	RunE:  runContext,
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.Flags().Bool("topic", false, "Also look up the channel topic (slower, may walk the tree)")
}

type contextResult struct {
	OK     bool                 `yaml:"ok"              json:"ok"`
	Action string               `yaml:"action"          json:"action"`
	Window finder.WindowContext `yaml:"window"          json:"window"`
	Topic  string               `yaml:"topic,omitempty" json:"topic,omitempty"`
}

func runContext(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetBool("topic")

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	result := contextResult{
		OK:     true,
		Action: "context",
		Window: engine.WindowContext(nil),
	}
	if topic {
		result.Topic = engine.ChannelTopic()
	}

	return output.Print(result)
}
