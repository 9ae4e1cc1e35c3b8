package ports

import "urtbot/internal/app/domain/command"

// Answer is a reply produced by a command handler, sent back to the channel
// the command came from.
type Answer struct {
	Text string
}

// AuthContext is derived fresh for every message by the router before any
// handler runs.
type AuthContext struct {
	IsServerAdmin bool
	Mode          ChannelMode
}

type CommandPort interface {
	// Handle returns nil when the verb is not one of this handler's, so
	// the router can fall through to the next handler set.
	Handle(cmd *command.Command, msg *ChatMessage, auth AuthContext) *Answer
}
