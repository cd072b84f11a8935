package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chatnav/internal/finder"
	"chatnav/internal/output"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read messages from the current channel",
	Long:  "Read the text of messages in the visible message list, oldest first. Use --limit to keep only the most recent ones.",
	RunE:  runMessages,
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.Flags().Int("limit", 0, "Max messages to return, counted from the newest (0 = all)")
	messagesCmd.Flags().Bool("unread", false, "Include the index of the unread marker, if present")
}

type messagesResult struct {
	OK          bool     `yaml:"ok"                     json:"ok"`
	Action      string   `yaml:"action"                 json:"action"`
	Messages    []string `yaml:"messages"               json:"messages"`
	Total       int      `yaml:"total"                  json:"total"`
	UnreadIndex *int     `yaml:"unread_index,omitempty" json:"unread_index,omitempty"`
}

func runMessages(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	unread, _ := cmd.Flags().GetBool("unread")

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	list := engine.MessageList()
	if list == nil {
		return fmt.Errorf("message list not found")
	}

	msgs := engine.Messages(list)
	result := messagesResult{OK: true, Action: "messages", Total: len(msgs)}

	if unread {
		if idx := engine.UnreadMarkerIndex(list); idx >= 0 {
			result.UnreadIndex = &idx
		}
	}

	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	result.Messages = make([]string, 0, len(msgs))
	for _, m := range msgs {
		result.Messages = append(result.Messages, finder.MessageContent(m))
	}

	return output.Print(result)
}
