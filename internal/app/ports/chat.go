package ports

type ChatPort interface {
	SendChannel(channelID, text string) error
	SendDirect(userID, text string) error
}

// ChatMessage is the transport-independent view of one incoming guild
// message. HasAdminPermission reflects the chat network's own notion of
// administrator; the configured allow-list is applied on top of it by the
// authorization gate.
type ChatMessage struct {
	MessageID          string
	UserID             string
	Username           string
	ChannelID          string
	GuildID            string
	Text               string
	HasAdminPermission bool
}
