// Package collector polls the backend for servers that became ready and
// delivers one direct message per server to its requester.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"urtbot/internal/app/adapters/metrics"
	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type Collector struct {
	log      logger.Logger
	backend  ports.BackendPort
	chat     ports.ChatPort
	interval time.Duration

	// dmLimiter smooths DM bursts when many servers become ready in the
	// same cycle, keeping the chat transport's rate limits out of reach.
	dmLimiter *rate.Limiter
	inFlight  atomic.Bool
	stop      chan struct{}
}

func New(log logger.Logger, backend ports.BackendPort, chat ports.ChatPort, interval time.Duration) *Collector {
	return &Collector{
		log:       log,
		backend:   backend,
		chat:      chat,
		interval:  interval,
		dmLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
		stop:      make(chan struct{}),
	}
}

func (c *Collector) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.Tick()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Collector) Stop() {
	close(c.stop)
}

// Tick runs one poll cycle. A tick that is still running when the next one
// fires is not overlapped; the new tick is skipped instead.
func (c *Collector) Tick() {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.log.Warn("Skipping poll tick, previous one still running")
		return
	}
	defer c.inFlight.Store(false)

	servers, err := c.backend.Collect(context.Background())
	if err != nil {
		metrics.PollFailures.Inc()
		c.log.Error("Failed to collect ready servers", err)
		return
	}
	metrics.PollCycles.Inc()

	for _, server := range servers {
		if server.Status == nil {
			continue
		}

		address := server.Address()
		userID := server.Status.UserID
		if address == "" || userID == "" {
			continue
		}

		_ = c.dmLimiter.Wait(context.Background())

		if err := c.chat.SendDirect(userID, notifyBody(address, server.Status.Password, server.Status.RefPassword)); err != nil {
			metrics.NotificationFailures.Inc()
			c.log.Error("Failed to deliver ready notification", err, slog.String("user_id", userID))
			continue
		}

		metrics.NotificationsSent.Inc()
		c.log.Info("Delivered ready notification", slog.String("user_id", userID), slog.String("address", address))
	}
}

func notifyBody(address, password, refPassword string) string {
	return fmt.Sprintf(`Your server is ready!

**connect %s; password %s**

/reflogin %s

**Administration**
/ref mute <player>
/ref forceteam <player>
/ref kick <player>
/ref ban <player>
/ref veto
/ref swap
/ref reload
/ref restart
/ref pause
/ref map <map>
/ref nextmap <map>
/ref cyclemap

**Configs**
/ref exec uz5v5ctf
(uz2v2, uz5v5bm, uz5v5cah, uz5v5ctf, uz5v5ft, uz5v5ftl, uz5v5nowave, uz5v5tdm, uz5v5ts, ncbomb, ncctf, ncts, knockout, skeetshoot)

Your server will be available for the next two hours.`, address, password, refPassword)
}
