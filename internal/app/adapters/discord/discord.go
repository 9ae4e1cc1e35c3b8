// Package discord adapts the Discord gateway to the bot's chat port. Only
// guild text messages from humans are forwarded; DMs and other bots are
// dropped here.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type Discord struct {
	log     logger.Logger
	session *discordgo.Session
}

func New(log logger.Logger, token string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	d := &Discord{
		log:     log,
		session: session,
	}

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		d.log.Info("Logged in", slog.String("username", r.User.Username))
	})

	return d, nil
}

// OnMessage registers the inbound pipeline. Each message is handled on its
// own goroutine so a slow backend call never blocks the gateway reader.
func (d *Discord) OnMessage(handler func(msg *ports.ChatMessage)) {
	d.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || m.GuildID == "" {
			return
		}

		isAdmin := false
		if perms, err := s.State.MessagePermissions(m.Message); err == nil {
			isAdmin = perms&discordgo.PermissionAdministrator != 0
		}

		msg := &ports.ChatMessage{
			MessageID:          m.ID,
			UserID:             m.Author.ID,
			Username:           m.Author.Username,
			ChannelID:          m.ChannelID,
			GuildID:            m.GuildID,
			Text:               m.Content,
			HasAdminPermission: isAdmin,
		}
		go handler(msg)
	})
}

func (d *Discord) Connect() error {
	if err := d.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

func (d *Discord) Close() error {
	return d.session.Close()
}

func (d *Discord) SendChannel(channelID, text string) error {
	_, err := d.session.ChannelMessageSend(channelID, text)
	return err
}

func (d *Discord) SendDirect(userID, text string) error {
	channel, err := d.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}

	_, err = d.session.ChannelMessageSend(channel.ID, text)
	return err
}
