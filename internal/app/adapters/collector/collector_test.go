package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type fakeBackend struct {
	servers    []ports.ServerRecord
	collectErr error
	calls      int
}

func (f *fakeBackend) Pool(context.Context, string) ([]ports.ServerRecord, error) { return nil, nil }
func (f *fakeBackend) AddServer(context.Context, string, string, string, string, string) error {
	return nil
}
func (f *fakeBackend) DeleteServer(context.Context, string, string) error { return nil }
func (f *fakeBackend) Rcon(context.Context, string, string, string) (string, error) {
	return "", nil
}
func (f *fakeBackend) RequestServer(context.Context, string, string, string) error { return nil }
func (f *fakeBackend) StopServer(context.Context, string, string) error            { return nil }

func (f *fakeBackend) Collect(context.Context) ([]ports.ServerRecord, error) {
	f.calls++
	return f.servers, f.collectErr
}

type fakeChat struct {
	dms     map[string]string
	sendErr map[string]error
}

func newFakeChat() *fakeChat {
	return &fakeChat{dms: make(map[string]string), sendErr: make(map[string]error)}
}

func (f *fakeChat) SendChannel(string, string) error { return nil }

func (f *fakeChat) SendDirect(userID, text string) error {
	if err := f.sendErr[userID]; err != nil {
		return err
	}
	f.dms[userID] = text
	return nil
}

func record(id int64, ip, userID, password, refPassword string) ports.ServerRecord {
	return ports.ServerRecord{
		ID:   id,
		IP:   ip,
		Port: "27960",
		Status: &ports.ServerStatus{
			Status:      "IN_USE",
			UserID:      userID,
			Password:    password,
			RefPassword: refPassword,
		},
	}
}

func TestCollector_Tick_NotifiesEachReadyServer(t *testing.T) {
	backend := &fakeBackend{servers: []ports.ServerRecord{
		record(1, "1.2.3.4", "u1", "pw1", "ref1"),
		record(2, "5.6.7.8", "u2", "pw2", "ref2"),
	}}
	chat := newFakeChat()

	New(logger.New(), backend, chat, time.Second).Tick()

	require.Len(t, chat.dms, 2)
	assert.Contains(t, chat.dms["u1"], "connect 1.2.3.4:27960; password pw1")
	assert.Contains(t, chat.dms["u1"], "/reflogin ref1")
	assert.Contains(t, chat.dms["u2"], "connect 5.6.7.8:27960; password pw2")
	assert.Contains(t, chat.dms["u2"], "/reflogin ref2")
}

func TestCollector_Tick_SkipsIncompleteRecords(t *testing.T) {
	backend := &fakeBackend{servers: []ports.ServerRecord{
		record(1, "", "u1", "pw", "ref"),
		record(2, "1.2.3.4", "", "pw", "ref"),
		{ID: 3, IP: "5.6.7.8", Port: "27960"},
		record(4, "9.9.9.9", "u4", "pw", "ref"),
	}}
	chat := newFakeChat()

	New(logger.New(), backend, chat, time.Second).Tick()

	require.Len(t, chat.dms, 1)
	assert.Contains(t, chat.dms["u4"], "9.9.9.9:27960")
}

func TestCollector_Tick_BackendFailure(t *testing.T) {
	backend := &fakeBackend{collectErr: assert.AnError}
	chat := newFakeChat()
	c := New(logger.New(), backend, chat, time.Second)

	c.Tick()
	assert.Empty(t, chat.dms)

	// the next cycle is unaffected
	backend.collectErr = nil
	backend.servers = []ports.ServerRecord{record(1, "1.2.3.4", "u1", "pw", "ref")}
	c.Tick()
	assert.Len(t, chat.dms, 1)
}

func TestCollector_Tick_DeliveryFailureContinuesBatch(t *testing.T) {
	backend := &fakeBackend{servers: []ports.ServerRecord{
		record(1, "1.2.3.4", "u1", "pw", "ref"),
		record(2, "5.6.7.8", "u2", "pw", "ref"),
	}}
	chat := newFakeChat()
	chat.sendErr["u1"] = assert.AnError

	New(logger.New(), backend, chat, time.Second).Tick()

	require.Len(t, chat.dms, 1)
	assert.Contains(t, chat.dms["u2"], "5.6.7.8:27960")
}

func TestCollector_Tick_SingleFlight(t *testing.T) {
	backend := &fakeBackend{}
	c := New(logger.New(), backend, newFakeChat(), time.Second)

	c.inFlight.Store(true)
	c.Tick()
	assert.Zero(t, backend.calls)

	c.inFlight.Store(false)
	c.Tick()
	assert.Equal(t, 1, backend.calls)
}
