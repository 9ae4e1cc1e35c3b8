package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urtbot/internal/app/infrastructure/config"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/infrastructure/storage"
	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type fakeBackend struct {
	calls int
}

func (f *fakeBackend) Pool(context.Context, string) ([]ports.ServerRecord, error) {
	f.calls++
	return nil, nil
}

func (f *fakeBackend) AddServer(context.Context, string, string, string, string, string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) DeleteServer(context.Context, string, string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) Rcon(context.Context, string, string, string) (string, error) {
	f.calls++
	return "", nil
}

func (f *fakeBackend) RequestServer(context.Context, string, string, string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) StopServer(context.Context, string, string) error {
	f.calls++
	return nil
}

func (f *fakeBackend) Collect(context.Context) ([]ports.ServerRecord, error) {
	f.calls++
	return nil, nil
}

type fakeChat struct {
	replies []string
	dms     []string
}

func (f *fakeChat) SendChannel(_ string, text string) error {
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeChat) SendDirect(_ string, text string) error {
	f.dms = append(f.dms, text)
	return nil
}

func newTestRouter(t *testing.T) (*Messages, *fakeBackend, *fakeChat, *storage.ChannelStore, *replies.Store) {
	t.Helper()

	rep, err := replies.Load("", "!urt")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Discord.Prefix = "!urt"
	cfg.Discord.CustomAdminIDs = []string{"admin42"}

	backend := &fakeBackend{}
	chat := &fakeChat{}
	channels := storage.NewChannelStore("")

	return New(logger.New(), cfg, backend, channels, rep, chat), backend, chat, channels, rep
}

func msg(userID, channelID, text string, isAdmin bool) *ports.ChatMessage {
	return &ports.ChatMessage{
		UserID:             userID,
		Username:           "someone",
		ChannelID:          channelID,
		GuildID:            "g1",
		Text:               text,
		HasAdminPermission: isAdmin,
	}
}

func TestMessages_IgnoresNonPrefixed(t *testing.T) {
	m, backend, chat, _, _ := newTestRouter(t)

	m.Handle(msg("u1", "c1", "hello everyone", false))
	m.Handle(msg("u1", "c1", "!urtservers", false))

	assert.Empty(t, chat.replies)
	assert.Zero(t, backend.calls)
}

func TestMessages_UnsetChannel(t *testing.T) {
	m, backend, chat, _, rep := newTestRouter(t)

	for _, text := range []string{"!urt start nae", "!urt stop", "!urt servers", "!urt help", "!urt bogus"} {
		m.Handle(msg("u1", "c1", text, false))
	}

	require.Len(t, chat.replies, 5)
	for _, reply := range chat.replies {
		assert.Equal(t, rep.Get(replies.WrongChannel), reply)
	}
	assert.Zero(t, backend.calls)
}

func TestMessages_PublicChannelAdminVerb(t *testing.T) {
	m, backend, chat, channels, rep := newTestRouter(t)
	channels.Set("c1", ports.ModePublic)

	for _, text := range []string{"!urt servers", "!urt add 1.2.3.4 27960 pw", "!urt delete 1", "!urt rcon 1 status"} {
		m.Handle(msg("u1", "c1", text, false))
	}

	require.Len(t, chat.replies, 4)
	for _, reply := range chat.replies {
		assert.Equal(t, rep.Get(replies.ChannelNotAdmin), reply)
	}
	assert.Zero(t, backend.calls)
}

func TestMessages_PublicChannelUserVerb(t *testing.T) {
	m, backend, chat, channels, rep := newTestRouter(t)
	channels.Set("c1", ports.ModePublic)

	m.Handle(msg("u1", "c1", "!urt stop", false))

	require.Len(t, chat.replies, 1)
	assert.Equal(t, rep.Get(replies.ServerStopped), chat.replies[0])
	assert.Equal(t, 1, backend.calls)
}

func TestMessages_ChannelCommandBootstrap(t *testing.T) {
	m, backend, chat, channels, rep := newTestRouter(t)

	// a server admin can configure a channel that has no mode yet
	m.Handle(msg("u1", "c1", "!urt channel admin", true))

	require.Len(t, chat.replies, 1)
	assert.Equal(t, rep.Get(replies.ChannelSetAdmin), chat.replies[0])
	assert.Equal(t, ports.ModeAdmin, channels.Get("c1"))
	assert.Zero(t, backend.calls)
}

func TestMessages_ChannelCommandAllowList(t *testing.T) {
	m, _, chat, channels, rep := newTestRouter(t)

	m.Handle(msg("admin42", "c1", "!urt channel public", false))

	require.Len(t, chat.replies, 1)
	assert.Equal(t, rep.Get(replies.ChannelSetPublic), chat.replies[0])
	assert.Equal(t, ports.ModePublic, channels.Get("c1"))
}

func TestMessages_ChannelCommandDenied(t *testing.T) {
	m, _, chat, channels, rep := newTestRouter(t)

	m.Handle(msg("u1", "c1", "!urt channel public", false))

	require.Len(t, chat.replies, 1)
	assert.Equal(t, rep.Get(replies.NotPermitted), chat.replies[0])
	assert.Equal(t, ports.ModeUnset, channels.Get("c1"))
}

func TestMessages_UnknownVerb(t *testing.T) {
	m, backend, chat, channels, rep := newTestRouter(t)
	channels.Set("c1", ports.ModePublic)

	m.Handle(msg("u1", "c1", "!urt dance", false))

	require.Len(t, chat.replies, 1)
	assert.Equal(t, rep.Get(replies.WrongCommand), chat.replies[0])
	assert.Zero(t, backend.calls)
}
