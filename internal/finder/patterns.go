package finder

// Patterns holds the name pattern sets for every region finder. All
// entries are matched as case-insensitive substrings. The zero value is
// unusable; start from DefaultPatterns and override fields as needed
// (the config file does exactly that).
type Patterns struct {
	Servers        []string `yaml:"servers"`
	Channels       []string `yaml:"channels"`
	Messages       []string `yaml:"messages"`
	MessageExclude []string `yaml:"message_exclude"`
	MessageInput   []string `yaml:"message_input"`
	Members        []string `yaml:"members"`
	UserArea       []string `yaml:"user_area"`
	ActiveNow      []string `yaml:"active_now"`
	Disconnect     []string `yaml:"disconnect"`
	Pinned         []string `yaml:"pinned"`
	Threads        []string `yaml:"threads"`
}

// DefaultPatterns returns the built-in pattern sets, tuned against the
// chat client's current labelling.
func DefaultPatterns() Patterns {
	return Patterns{
		Servers: []string{
			"servers", "guilds", "guild", "server navigation",
			"server sidebar", "guild sidebar",
		},
		Channels: []string{
			"channels", "channel list", "private channels",
			"text channels", "voice channels", "channel sidebar",
			"text & voice",
		},
		Messages: []string{
			"messages in", "chat messages", "message list", "messages",
		},
		// Names that contain "messages" but are sidebar navigation,
		// not the chat area.
		MessageExclude: []string{
			"direct messages", "private messages", "group messages",
			"message requests",
		},
		MessageInput: []string{
			"message @", "message #", "message ",
			"chat message", "type a message", "reply to",
		},
		Members: []string{
			"members", "member list", "people",
		},
		UserArea: []string{
			"user area", "user panel", "account",
			"user status", "status and settings",
		},
		ActiveNow: []string{
			"active now",
		},
		Disconnect: []string{
			"disconnect", "leave voice", "leave call",
			"disconnect quietly",
		},
		Pinned: []string{
			"pinned messages", "pinned", "pins",
		},
		Threads: []string{
			"threads", "thread list", "show threads",
		},
	}
}

// merge overlays non-empty override fields onto p.
func (p Patterns) merge(o Patterns) Patterns {
	if len(o.Servers) > 0 {
		p.Servers = o.Servers
	}
	if len(o.Channels) > 0 {
		p.Channels = o.Channels
	}
	if len(o.Messages) > 0 {
		p.Messages = o.Messages
	}
	if len(o.MessageExclude) > 0 {
		p.MessageExclude = o.MessageExclude
	}
	if len(o.MessageInput) > 0 {
		p.MessageInput = o.MessageInput
	}
	if len(o.Members) > 0 {
		p.Members = o.Members
	}
	if len(o.UserArea) > 0 {
		p.UserArea = o.UserArea
	}
	if len(o.ActiveNow) > 0 {
		p.ActiveNow = o.ActiveNow
	}
	if len(o.Disconnect) > 0 {
		p.Disconnect = o.Disconnect
	}
	if len(o.Pinned) > 0 {
		p.Pinned = o.Pinned
	}
	if len(o.Threads) > 0 {
		p.Threads = o.Threads
	}
	return p
}
