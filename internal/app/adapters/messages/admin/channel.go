package admin

import (
	"log/slog"

	"urtbot/internal/app/domain/command"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/ports"
	"urtbot/pkg/texttable"
)

// handleChannel mutates the channel-mode store. The router has already
// checked the invoking user for server-admin privilege, so this works even
// on a channel with no mode yet.
func (a *Admin) handleChannel(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	if len(cmd.Args) != 1 {
		return &ports.Answer{Text: a.replies.Get(replies.WrongCommand)}
	}

	switch cmd.Args[0] {
	case "public":
		a.channels.Set(msg.ChannelID, ports.ModePublic)
		a.log.Info("Channel mode set", slog.String("channel_id", msg.ChannelID), slog.String("mode", string(ports.ModePublic)))
		return &ports.Answer{Text: a.replies.Get(replies.ChannelSetPublic)}
	case "admin":
		a.channels.Set(msg.ChannelID, ports.ModeAdmin)
		a.log.Info("Channel mode set", slog.String("channel_id", msg.ChannelID), slog.String("mode", string(ports.ModeAdmin)))
		return &ports.Answer{Text: a.replies.Get(replies.ChannelSetAdmin)}
	case "remove":
		a.channels.Delete(msg.ChannelID)
		a.log.Info("Channel mode removed", slog.String("channel_id", msg.ChannelID))
		return &ports.Answer{Text: a.replies.Get(replies.ChannelRemoved)}
	case "list":
		rows := [][]string{{"Channel", "Mode"}}
		for channelID, mode := range a.channels.All() {
			rows = append(rows, []string{channelID, string(mode)})
		}
		return &ports.Answer{Text: texttable.Fence(texttable.Render(rows))}
	default:
		return &ports.Answer{Text: a.replies.Get(replies.WrongCommand)}
	}
}
