package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"homeiota.xyz/home-monitor-service/pkg/common"
)

// Gotify priorities used by the canned alert messages.
const (
	PriorityDefault     = 5
	PriorityTemperature = 7
	PriorityOffline     = 8
)

// Notifier delivers one message to one recipient channel. The channel key
// identifies the recipient's Gotify application; an empty key falls back to
// the sender's default channel.
type Notifier interface {
	Send(ctx context.Context, channelKey, title, message string, priority int) error
}

// GotifyClient delivers messages to a Gotify server. Any transport error or
// non-2xx response is a delivery error for the caller to handle.
type GotifyClient struct {
	BaseURL string

	// Token is the default channel key, used when Send gets an empty one.
	Token string

	// DashboardURL, when set, is appended to every message as a details link.
	DashboardURL string

	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client
}

type gotifyMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

func (g *GotifyClient) Send(ctx context.Context, channelKey, title, message string, priority int) error {
	logger := common.GetLoggerWith(common.LoggerNameNotify)

	if channelKey == "" {
		channelKey = g.Token
	}

	if g.DashboardURL != "" {
		message = fmt.Sprintf("%s\n\nView details: %s", message, g.DashboardURL)
	}

	payload, err := json.Marshal(gotifyMessage{
		Title:    title,
		Message:  message,
		Priority: priority,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/message", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gotify-Key", channelKey)

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gotify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gotify returned status %d", resp.StatusCode)
	}

	logger.Info("Sent notification",
		zap.String("title", title),
		zap.Int("priority", priority),
		zap.Int("status", resp.StatusCode))

	return nil
}

func TemperatureAlert(deviceName string, current, threshold float64) (title, message string) {
	title = fmt.Sprintf("Temperature Alert: %s", deviceName)
	message = fmt.Sprintf("🌡️ Temperature Alert\n\nDevice: %s\nCurrent: %g°F\nThreshold: %g°F",
		deviceName, current, threshold)
	return title, message
}

func OfflineAlert(deviceName string, minutesOffline int) (title, message string) {
	title = fmt.Sprintf("Device Offline: %s", deviceName)
	message = fmt.Sprintf("⚠️ Device Offline\n\nDevice: %s\nOffline for: %d minutes",
		deviceName, minutesOffline)
	return title, message
}
