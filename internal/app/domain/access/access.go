package access

import (
	"slices"

	"urtbot/internal/app/domain/command"
	"urtbot/internal/app/ports"
)

// Class is the minimum channel context a verb needs. Owner-class verbs
// bypass the channel gate entirely and are checked against the invoking
// user instead, which is how an admin bootstraps an unconfigured channel.
type Class int

const (
	ClassPublic Class = iota
	ClassAdmin
	ClassOwner
)

func ClassOf(v command.Verb) Class {
	switch v {
	case command.Help, command.Available, command.Start, command.Stop:
		return ClassPublic
	case command.Servers, command.Add, command.Delete, command.Rcon, command.Ping:
		return ClassAdmin
	case command.Channel:
		return ClassOwner
	case command.Unknown:
		return ClassPublic
	}
	return ClassPublic
}

type Decision int

const (
	Allow Decision = iota
	WrongChannel
	NotAdminChannel
	NotPermitted
)

func Check(v command.Verb, ctx ports.AuthContext) Decision {
	if ClassOf(v) == ClassOwner {
		if ctx.IsServerAdmin {
			return Allow
		}
		return NotPermitted
	}

	switch ctx.Mode {
	case ports.ModeUnset:
		return WrongChannel
	case ports.ModePublic:
		if ClassOf(v) == ClassAdmin {
			return NotAdminChannel
		}
	case ports.ModeAdmin:
	}
	return Allow
}

// IsServerAdmin is true for users holding the chat network's administrator
// permission or listed in the configured allow-list.
func IsServerAdmin(msg *ports.ChatMessage, allowList []string) bool {
	return msg.HasAdminPermission || slices.Contains(allowList, msg.UserID)
}
