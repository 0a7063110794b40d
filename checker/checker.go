package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

const Version = "v1"

type SystemStatus struct {
	Uptime       uint64 `json:"uptime_seconds"`
	UptimeString string `json:"uptime_string"`
	UserCount    int    `json:"user_count"`
	Version      string `json:"version"`
}

// UserCounter is satisfied by auth.Service.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

var uptime = host.UptimeWithContext

func CheckSystem(ctx context.Context, users UserCounter) (SystemStatus, error) {
	status := SystemStatus{Version: Version}

	up, err := uptime(ctx)
	if err != nil {
		return status, fmt.Errorf("uptime: %w", err)
	}
	status.Uptime = up
	status.UptimeString = FormatUptime(up)

	if users != nil {
		count, err := users.Count(ctx)
		if err != nil {
			return status, fmt.Errorf("user count: %w", err)
		}
		status.UserCount = count
	}

	return status, nil
}

// FormatUptime renders seconds as "3d 4h 5m", dropping leading zero units.
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
