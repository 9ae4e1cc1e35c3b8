package admin

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"

	"urtbot/internal/app/ports"
)

var startApp = time.Now()

func (a *Admin) handlePing() *ports.Answer {
	uptime := time.Since(startApp)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, _ := cpu.Percent(0, false)
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	return &ports.Answer{
		Text: fmt.Sprintf("up %v • CPU %.2f%% • RAM %v MB", uptime.Truncate(time.Second), percent[0], m.Sys/1024/1024),
	}
}
