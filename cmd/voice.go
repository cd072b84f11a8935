package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chatnav/internal/element"
	"chatnav/internal/finder"
	"chatnav/internal/output"
	"chatnav/internal/walk"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Show the current voice connection",
	Long:  "Report the active voice connection (channel, status, latency) and, with --participants, who is in the channel and their mute state.",
	RunE:  runVoice,
}

func init() {
	rootCmd.AddCommand(voiceCmd)
	voiceCmd.Flags().Bool("participants", false, "Include voice channel participants")
}

type voiceResult struct {
	OK           bool              `yaml:"ok"                     json:"ok"`
	Action       string            `yaml:"action"                 json:"action"`
	Connection   *finder.VoiceInfo `yaml:"connection"             json:"connection"`
	Participants []string          `yaml:"participants,omitempty" json:"participants,omitempty"`
}

func runVoice(cmd *cobra.Command, args []string) error {
	withParticipants, _ := cmd.Flags().GetBool("participants")

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	info := engine.VoiceInfo()
	if info == nil {
		return fmt.Errorf("no voice connection detected")
	}

	result := voiceResult{OK: true, Action: "voice", Connection: info}
	if withParticipants && info.Channel != "" {
		if ch := voiceChannelItem(engine, info.Channel); ch != nil {
			result.Participants = finder.VoiceParticipants(ch)
		}
	}

	return output.Print(result)
}

// voiceChannelItem finds the channel list entry matching the connected
// voice channel's name.
func voiceChannelItem(engine *finder.Engine, channel string) element.Handle {
	list := engine.ChannelList()
	if list == nil {
		return nil
	}
	want := strings.ToLower(channel)
	for _, child := range walk.Children(list) {
		if strings.Contains(strings.ToLower(child.Name()), want) {
			return child
		}
	}
	return nil
}
