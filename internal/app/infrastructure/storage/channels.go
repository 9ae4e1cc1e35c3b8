package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/maypok86/otter/v2"

	"urtbot/internal/app/ports"
)

// ChannelStore keeps the per-channel operating mode in an in-memory cache
// mirrored to a JSON file. Entries never expire; the file is rewritten on
// every mutation and loaded once at startup.
type ChannelStore struct {
	cache    *otter.Cache[string, string]
	filePath string
}

func NewChannelStore(filePath string) *ChannelStore {
	s := &ChannelStore{
		cache: otter.Must(&otter.Options[string, string]{
			InitialCapacity: 16,
		}),
		filePath: filePath,
	}

	_ = s.loadFromDisk()
	return s
}

func (s *ChannelStore) Set(channelID string, mode ports.ChannelMode) {
	s.cache.Set(channelID, string(mode))
	s.flushToDisk()
}

func (s *ChannelStore) Get(channelID string) ports.ChannelMode {
	mode, ok := s.cache.GetIfPresent(channelID)
	if !ok {
		return ports.ModeUnset
	}
	return ports.ChannelMode(mode)
}

func (s *ChannelStore) Delete(channelID string) {
	s.cache.Invalidate(channelID)
	s.flushToDisk()
}

func (s *ChannelStore) All() map[string]ports.ChannelMode {
	modes := make(map[string]ports.ChannelMode)
	for k, v := range s.cache.All() {
		modes[k] = ports.ChannelMode(v)
	}
	return modes
}

func (s *ChannelStore) flushToDisk() {
	if s.filePath == "" {
		return
	}

	rows := make(map[string]string)
	for k, v := range s.cache.All() {
		rows[k] = v
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}

	_ = os.MkdirAll(filepath.Dir(s.filePath), 0700)
	_ = os.WriteFile(s.filePath, data, 0600)
}

func (s *ChannelStore) loadFromDisk() error {
	if s.filePath == "" {
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var rows map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}

	for k, v := range rows {
		s.cache.Set(k, v)
	}

	return nil
}
