package home

import "time"

type DeviceStatus string

const (
	StatusOnline  DeviceStatus = "online"
	StatusWarning DeviceStatus = "warning"
	StatusOffline DeviceStatus = "offline"
)

// Fixed UI cutoffs. The per-user offline grace period for alerting is a
// separate, configurable value.
const (
	warningAfter = 10 * time.Minute
	offlineAfter = 60 * time.Minute
)

// DeriveStatus classifies liveness from the most recent reading timestamp.
// Never persisted, always recomputed against wall-clock time.
func DeriveStatus(lastSeen, now time.Time) DeviceStatus {
	gap := now.Sub(lastSeen)
	switch {
	case gap >= offlineAfter:
		return StatusOffline
	case gap >= warningAfter:
		return StatusWarning
	default:
		return StatusOnline
	}
}

func MinutesAgo(lastSeen, now time.Time) int {
	return int(now.Sub(lastSeen) / time.Minute)
}

func HoursAgo(lastSeen, now time.Time) int {
	return int(now.Sub(lastSeen) / time.Hour)
}
