package ports

type ChannelMode string

const (
	ModeUnset  ChannelMode = ""
	ModePublic ChannelMode = "PUBLIC"
	ModeAdmin  ChannelMode = "ADMIN"
)

// ChannelStorePort persists the operating mode per channel. Every call is a
// single atomic step; callers never cache modes across messages.
type ChannelStorePort interface {
	Set(channelID string, mode ChannelMode)
	Get(channelID string) ChannelMode
	Delete(channelID string)
	All() map[string]ChannelMode
}
