// Package admin implements the admin-channel command set: servers, add,
// delete, rcon, channel and ping.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"urtbot/internal/app/domain/command"
	"urtbot/internal/app/infrastructure/config"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
	"urtbot/pkg/texttable"
)

// rconMaxOutput keeps fenced rcon output under the chat transport's
// 2000-character message limit.
const rconMaxOutput = 1900

type Admin struct {
	log      logger.Logger
	cfg      *config.Config
	backend  ports.BackendPort
	channels ports.ChannelStorePort
	replies  *replies.Store
}

func New(log logger.Logger, cfg *config.Config, backend ports.BackendPort, channels ports.ChannelStorePort, rep *replies.Store) *Admin {
	return &Admin{
		log:      log,
		cfg:      cfg,
		backend:  backend,
		channels: channels,
		replies:  rep,
	}
}

func (a *Admin) Handle(cmd *command.Command, msg *ports.ChatMessage, _ ports.AuthContext) *ports.Answer {
	switch cmd.Verb {
	case command.Servers:
		return a.handleServers(msg)
	case command.Add:
		return a.handleAdd(cmd, msg)
	case command.Delete:
		return a.handleDelete(cmd, msg)
	case command.Rcon:
		return a.handleRcon(cmd, msg)
	case command.Channel:
		return a.handleChannel(cmd, msg)
	case command.Ping:
		return a.handlePing()
	default:
		return nil
	}
}

func (a *Admin) handleServers(msg *ports.ChatMessage) *ports.Answer {
	servers, err := a.backend.Pool(context.Background(), msg.GuildID)
	if err != nil {
		a.log.Error("Failed to fetch pool", err, slog.String("guild_id", msg.GuildID))
		return &ports.Answer{Text: a.replies.Get(replies.APIError)}
	}

	rows := [][]string{{"ID", "Address", "RCON", "Region", "Status"}}
	var inUse []string
	for _, s := range servers {
		status := ""
		if s.Status != nil {
			status = s.Status.Status
		}
		rows = append(rows, []string{fmt.Sprintf("%d", s.ID), s.Address(), s.RconPassword, s.Region, status})

		if s.Status != nil && s.Status.Status == ports.StatusInUse {
			inUse = append(inUse, fmt.Sprintf("[%d] /connect %s; password %s; rconpassword %s", s.ID, s.Address(), s.Status.Password, s.RconPassword))
		}
	}

	out := texttable.Render(rows)
	for _, line := range inUse {
		out += "\n" + line
	}
	return &ports.Answer{Text: texttable.Fence(out)}
}

func (a *Admin) handleAdd(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	if len(cmd.Args) != 3 && len(cmd.Args) != 4 {
		return &ports.Answer{Text: a.replies.Get(replies.WrongCommand)}
	}

	var region string
	if len(cmd.Args) == 4 {
		region = cmd.Args[3]
	}

	if err := a.backend.AddServer(context.Background(), msg.GuildID, cmd.Args[0], cmd.Args[1], cmd.Args[2], region); err != nil {
		a.log.Error("Failed to add server", err, slog.String("guild_id", msg.GuildID))
		return &ports.Answer{Text: a.replies.Get(replies.APIError)}
	}
	return &ports.Answer{Text: a.replies.Get(replies.ServerAdded)}
}

func (a *Admin) handleDelete(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	if len(cmd.Args) != 1 {
		return &ports.Answer{Text: a.replies.Get(replies.WrongCommand)}
	}

	err := a.backend.DeleteServer(context.Background(), msg.GuildID, cmd.Args[0])
	switch {
	case err == nil:
		return &ports.Answer{Text: a.replies.Get(replies.ServerRemoved)}
	case errors.Is(err, ports.ErrNotFound):
		return &ports.Answer{Text: a.replies.Get(replies.ServerNotFound)}
	default:
		a.log.Error("Failed to delete server", err, slog.String("server_id", cmd.Args[0]))
		return &ports.Answer{Text: a.replies.Get(replies.APIError)}
	}
}

func (a *Admin) handleRcon(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	if len(cmd.Args) < 2 || cmd.RawTail == "" {
		return &ports.Answer{Text: a.replies.Get(replies.WrongCommand)}
	}

	data, err := a.backend.Rcon(context.Background(), msg.GuildID, cmd.Args[0], cmd.RawTail)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return &ports.Answer{Text: a.replies.Get(replies.ServerNotFound)}
	case err != nil:
		a.log.Error("Failed to execute rcon", err, slog.String("server_id", cmd.Args[0]))
		return &ports.Answer{Text: a.replies.Get(replies.APIError)}
	}

	if runes := []rune(data); len(runes) > rconMaxOutput {
		data = string(runes[:rconMaxOutput])
	}
	return &ports.Answer{Text: texttable.Fence(data)}
}
