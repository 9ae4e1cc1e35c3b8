// Package replies holds every user-facing string the bot sends. Defaults
// can be overridden per deployment from a JSON file keyed by reply name;
// %prefix% is substituted with the configured command prefix at load time.
package replies

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Key string

const (
	WrongCommand     Key = "WRONG_COMMAND"
	APIError         Key = "API_ERROR"
	ServerStarted    Key = "SERVER_STARTED"
	NoServer         Key = "NO_SERVER_AVAILABLE"
	ServerLimit      Key = "USER_SERVERLIMIT_REACHED"
	RequestError     Key = "SERVER_REQUEST_ERROR"
	ServerStopped    Key = "SERVER_STOPPED"
	StopNotFound     Key = "SERVER_STOP_NOT_FOUND"
	StopError        Key = "SERVER_STOP_ERROR"
	ServerAdded      Key = "SERVER_ADDED_SUCCESS"
	ServerRemoved    Key = "SERVER_REMOVED_SUCCESS"
	ServerNotFound   Key = "SERVER_NOT_FOUND"
	WrongChannel     Key = "WRONG_CHANNEL"
	ChannelNotAdmin  Key = "CHANNEL_NOT_ADMIN"
	NotPermitted     Key = "NOT_PERMITTED"
	ChannelSetPublic Key = "CHANNEL_SET_PUBLIC"
	ChannelSetAdmin  Key = "CHANNEL_SET_ADMIN"
	ChannelRemoved   Key = "CHANNEL_REMOVED"
)

var defaults = map[Key]string{
	WrongCommand:     "Wrong command, see `%prefix% help`",
	APIError:         "Something went wrong, try again later",
	ServerStarted:    "Your server is being prepared, I'll send you a DM once it's ready!",
	NoServer:         "No server available right now, try again later",
	ServerLimit:      "You already have a server, use `%prefix% stop` first",
	RequestError:     "Could not request a server, try again later",
	ServerStopped:    "Your server is shutting down",
	StopNotFound:     "You have no running server to stop",
	StopError:        "Could not stop your server, try again later",
	ServerAdded:      "Server added to the pool",
	ServerRemoved:    "Server removed from the pool",
	ServerNotFound:   "Server not found",
	WrongChannel:     "I don't take commands in this channel",
	ChannelNotAdmin:  "That command only works in an admin channel",
	NotPermitted:     "You are not allowed to do that",
	ChannelSetPublic: "Channel mode set to PUBLIC",
	ChannelSetAdmin:  "Channel mode set to ADMIN",
	ChannelRemoved:   "Channel mode removed",
}

type Store struct {
	strings map[Key]string
}

// Load builds the reply set: defaults, then overrides from path when the
// file exists, then %prefix% substitution over every value.
func Load(path, prefix string) (*Store, error) {
	merged := make(map[Key]string, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read strings file: %w", err)
		default:
			var overrides map[Key]string
			if err := json.Unmarshal(raw, &overrides); err != nil {
				return nil, fmt.Errorf("parse strings file: %w", err)
			}
			for k, v := range overrides {
				merged[k] = v
			}
		}
	}

	for k, v := range merged {
		merged[k] = strings.ReplaceAll(v, "%prefix%", prefix)
	}

	return &Store{strings: merged}, nil
}

func (s *Store) Get(k Key) string {
	if v, ok := s.strings[k]; ok {
		return v
	}
	return string(k)
}
