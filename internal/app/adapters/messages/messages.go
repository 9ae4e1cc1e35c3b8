// Package messages routes incoming chat messages: parse the prefix
// command, authorize it against the channel mode and the invoking user,
// dispatch it to the matching handler set and send the reply.
package messages

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"urtbot/internal/app/adapters/messages/admin"
	"urtbot/internal/app/adapters/messages/user"
	"urtbot/internal/app/adapters/metrics"
	"urtbot/internal/app/domain/access"
	"urtbot/internal/app/domain/command"
	"urtbot/internal/app/infrastructure/config"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type Messages struct {
	log      logger.Logger
	cfg      *config.Config
	parser   *command.Parser
	channels ports.ChannelStorePort
	replies  *replies.Store
	chat     ports.ChatPort

	admin, user ports.CommandPort
}

func New(log logger.Logger, cfg *config.Config, backend ports.BackendPort, channels ports.ChannelStorePort, rep *replies.Store, chat ports.ChatPort) *Messages {
	return &Messages{
		log:      log,
		cfg:      cfg,
		parser:   command.NewParser(cfg.Discord.Prefix),
		channels: channels,
		replies:  rep,
		chat:     chat,
		admin:    admin.New(log, cfg, backend, channels, rep),
		user:     user.New(log, cfg, backend, rep),
	}
}

func (m *Messages) Handle(msg *ports.ChatMessage) {
	cmd := m.parser.Parse(msg.Text)
	if cmd == nil {
		return
	}

	start := time.Now()
	m.log.Debug("Processing command",
		slog.String("verb", cmd.Verb.String()),
		slog.String("username", msg.Username),
		slog.String("channel_id", msg.ChannelID),
	)

	auth := ports.AuthContext{
		IsServerAdmin: access.IsServerAdmin(msg, m.cfg.Discord.CustomAdminIDs),
		Mode:          m.channels.Get(msg.ChannelID),
	}

	var answer *ports.Answer
	switch access.Check(cmd.Verb, auth) {
	case access.WrongChannel:
		metrics.AuthDenied.With(prometheus.Labels{"decision": "wrong_channel"}).Inc()
		answer = &ports.Answer{Text: m.replies.Get(replies.WrongChannel)}
	case access.NotAdminChannel:
		metrics.AuthDenied.With(prometheus.Labels{"decision": "not_admin_channel"}).Inc()
		answer = &ports.Answer{Text: m.replies.Get(replies.ChannelNotAdmin)}
	case access.NotPermitted:
		metrics.AuthDenied.With(prometheus.Labels{"decision": "not_permitted"}).Inc()
		answer = &ports.Answer{Text: m.replies.Get(replies.NotPermitted)}
	case access.Allow:
		answer = m.dispatch(cmd, msg, auth)
	}

	metrics.CommandsTotal.With(prometheus.Labels{"verb": cmd.Verb.String()}).Inc()
	metrics.CommandProcessingTime.Observe(time.Since(start).Seconds())

	if answer == nil {
		return
	}
	if err := m.chat.SendChannel(msg.ChannelID, answer.Text); err != nil {
		m.log.Error("Failed to send reply", err, slog.String("channel_id", msg.ChannelID))
	}
}

func (m *Messages) dispatch(cmd *command.Command, msg *ports.ChatMessage, auth ports.AuthContext) *ports.Answer {
	if answer := m.admin.Handle(cmd, msg, auth); answer != nil {
		return answer
	}
	if answer := m.user.Handle(cmd, msg, auth); answer != nil {
		return answer
	}
	return &ports.Answer{Text: m.replies.Get(replies.WrongCommand)}
}
