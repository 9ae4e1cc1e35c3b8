// Package user implements the public command set: help, available, start
// and stop. These run in any configured channel.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"urtbot/internal/app/domain/command"
	"urtbot/internal/app/infrastructure/config"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
	"urtbot/pkg/texttable"
)

// worldRegion buckets pool entries that carry no region of their own.
const worldRegion = "WORLD"

type User struct {
	log     logger.Logger
	cfg     *config.Config
	backend ports.BackendPort
	replies *replies.Store
}

func New(log logger.Logger, cfg *config.Config, backend ports.BackendPort, rep *replies.Store) *User {
	return &User{
		log:     log,
		cfg:     cfg,
		backend: backend,
		replies: rep,
	}
}

func (u *User) Handle(cmd *command.Command, msg *ports.ChatMessage, auth ports.AuthContext) *ports.Answer {
	switch cmd.Verb {
	case command.Help:
		return u.handleHelp(auth)
	case command.Available:
		return u.handleAvailable(msg)
	case command.Start:
		return u.handleStart(cmd, msg)
	case command.Stop:
		return u.handleStop(cmd, msg)
	default:
		return nil
	}
}

func (u *User) handleStart(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	var region string
	switch {
	case len(cmd.Args) == 1:
		region = cmd.Args[0]
	case len(cmd.Args) == 0 && u.cfg.Discord.AllowRandomRegion:
	default:
		return &ports.Answer{Text: u.replies.Get(replies.WrongCommand)}
	}

	err := u.backend.RequestServer(context.Background(), msg.GuildID, msg.UserID, region)
	switch {
	case err == nil:
		return &ports.Answer{Text: u.replies.Get(replies.ServerStarted)}
	case errors.Is(err, ports.ErrNoServerAvailable):
		return &ports.Answer{Text: u.replies.Get(replies.NoServer)}
	case errors.Is(err, ports.ErrAlreadyRequested):
		return &ports.Answer{Text: u.replies.Get(replies.ServerLimit)}
	default:
		u.log.Error("Failed to request server", err, slog.String("user_id", msg.UserID))
		return &ports.Answer{Text: u.replies.Get(replies.RequestError)}
	}
}

func (u *User) handleStop(cmd *command.Command, msg *ports.ChatMessage) *ports.Answer {
	if len(cmd.Args) != 0 {
		return &ports.Answer{Text: u.replies.Get(replies.WrongCommand)}
	}

	err := u.backend.StopServer(context.Background(), msg.GuildID, msg.UserID)
	switch {
	case err == nil:
		return &ports.Answer{Text: u.replies.Get(replies.ServerStopped)}
	case errors.Is(err, ports.ErrNotFound):
		return &ports.Answer{Text: u.replies.Get(replies.StopNotFound)}
	default:
		u.log.Error("Failed to stop server", err, slog.String("user_id", msg.UserID))
		return &ports.Answer{Text: u.replies.Get(replies.StopError)}
	}
}

func (u *User) handleAvailable(msg *ports.ChatMessage) *ports.Answer {
	servers, err := u.backend.Pool(context.Background(), msg.GuildID)
	if err != nil {
		u.log.Error("Failed to fetch pool", err, slog.String("guild_id", msg.GuildID))
		return &ports.Answer{Text: u.replies.Get(replies.APIError)}
	}

	type regionCount struct {
		available int
		total     int
	}

	counts := make(map[string]*regionCount)
	order := make([]string, 0)
	for _, s := range servers {
		region := s.Region
		if region == "" {
			region = worldRegion
		}

		rc, ok := counts[region]
		if !ok {
			rc = &regionCount{}
			counts[region] = rc
			order = append(order, region)
		}
		if s.Status != nil && s.Status.Status == ports.StatusAvailable {
			rc.available++
		}
		rc.total++
	}

	rows := [][]string{{"Region", "Available servers"}}
	for _, region := range order {
		rows = append(rows, []string{region, fmt.Sprintf("%d/%d", counts[region].available, counts[region].total)})
	}

	return &ports.Answer{Text: texttable.Fence(texttable.Render(rows))}
}

func (u *User) handleHelp(auth ports.AuthContext) *ports.Answer {
	prefix := u.cfg.Discord.Prefix

	var sb strings.Builder
	sb.WriteString("**Available commands:**\n")
	sb.WriteString(prefix + " available\n")
	if u.cfg.Discord.AllowRandomRegion {
		sb.WriteString(prefix + " start\n")
	}
	sb.WriteString(prefix + " start <region>\n")
	sb.WriteString(prefix + " stop")

	if auth.IsServerAdmin || auth.Mode == ports.ModeAdmin {
		sb.WriteString("\n\n**Admin commands**:\n")
		sb.WriteString(prefix + " servers\n")
		sb.WriteString(prefix + " add <ip> <port> <rconpassword> <optional region>\n")
		sb.WriteString(prefix + " delete <id>\n")
		sb.WriteString(prefix + " rcon <id> <command>\n")
		sb.WriteString(prefix + " channel public|admin|remove|list\n")
		sb.WriteString(prefix + " ping")
	}

	return &ports.Answer{Text: sb.String()}
}
