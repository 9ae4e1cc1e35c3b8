package ports

import (
	"context"
	"errors"
)

var (
	// ErrNotFound maps a backend 404 where it carries meaning (pool entry,
	// rcon target, or a stop with no running server).
	ErrNotFound = errors.New("not found")
	// ErrNoServerAvailable is the backend's structured refusal when the pool
	// has no free server in the requested region.
	ErrNoServerAvailable = errors.New("no server available")
	// ErrAlreadyRequested is returned when the user already holds a server.
	ErrAlreadyRequested = errors.New("already requested server")
)

const (
	StatusAvailable = "AVAILABLE"
	StatusInUse     = "IN_USE"
)

// ServerRecord mirrors one pool entry as the orchestration backend reports
// it. The bot never mutates these directly.
type ServerRecord struct {
	ID           int64         `json:"id"`
	IP           string        `json:"ip"`
	Port         string        `json:"port"`
	RconPassword string        `json:"rconpassword"`
	Region       string        `json:"region"`
	Status       *ServerStatus `json:"UrTServerStatus"`
}

type ServerStatus struct {
	Status      string `json:"status"`
	Password    string `json:"password"`
	RefPassword string `json:"refpass"`
	UserID      string `json:"userDiscordId"`
}

// Address is the connect endpoint, empty when the record carries no ip.
func (r *ServerRecord) Address() string {
	if r.IP == "" || r.Port == "" {
		return ""
	}
	return r.IP + ":" + r.Port
}

type BackendPort interface {
	Pool(ctx context.Context, guildID string) ([]ServerRecord, error)
	AddServer(ctx context.Context, guildID, ip, port, rconPassword, region string) error
	DeleteServer(ctx context.Context, guildID, id string) error
	Rcon(ctx context.Context, guildID, id, command string) (string, error)
	RequestServer(ctx context.Context, guildID, userID, region string) error
	StopServer(ctx context.Context, guildID, userID string) error
	Collect(ctx context.Context) ([]ServerRecord, error)
}
