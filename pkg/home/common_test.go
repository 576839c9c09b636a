package home

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"homeiota.xyz/home-monitor-service/pkg/db"
	notifymocks "homeiota.xyz/home-monitor-service/pkg/notify/mocks"
)

type MockHome struct {
	Ctrl     *gomock.Controller
	Home     *Home
	Notifier *notifymocks.MockNotifier
}

// GetMockHomeWithMemorySqliteDialector builds a Home over the shared
// in-memory sqlite instance, with every service real and a mock notifier
// wired in so tests can assert on deliveries without hitting Gotify.
func GetMockHomeWithMemorySqliteDialector(t *testing.T) *MockHome {
	ctrl := gomock.NewController(t)

	m := &MockHome{
		Ctrl:     ctrl,
		Notifier: notifymocks.NewMockNotifier(ctrl),
	}

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector()) // ensure migrations
	homeInstance := &Home{Db: *dbInstance, Notifier: m.Notifier}

	homeInstance.WithServices(ServiceOpts{
		Device:     homeInstance.GetIDevice(),
		Alert:      homeInstance.GetIAlert(),
		Session:    homeInstance.GetISession(),
		Account:    homeInstance.GetIAccount(),
		Ingest:     homeInstance.GetIIngest(),
		Preference: homeInstance.GetIPreference(),
	})

	m.Home = homeInstance
	return m
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
