package home

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
	_ "homeiota.xyz/home-monitor-service/pkg/testing"
)

func TestDeviceSummaries(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	now := time.Now()
	location := "loc-" + uuid.NewString()

	require.NoError(t, m.Home.Db.Conn.Create(&models.PumpRunTime{
		RunTime: 42, Current: 8.5, Timestamp: now.Add(-5 * time.Minute),
	}).Error)
	require.NoError(t, m.Home.Db.Conn.Create(&models.DeviceHeartbeat{
		DeviceID: "pump", Pump: true, Timestamp: now.Add(-2 * time.Minute),
	}).Error)
	require.NoError(t, m.Home.Db.Conn.Create(&models.TemperatureReading{
		Value: 34.0, Location: location, Timestamp: now.Add(-30 * time.Minute),
	}).Error)
	require.NoError(t, m.Home.Db.Conn.Create(&models.TemperatureReading{
		Value: 36.5, Location: location, Timestamp: now.Add(-12 * time.Minute),
	}).Error)

	summaries, err := m.Home.Device.DeviceSummaries(now)
	require.NoError(t, err)
	require.NotEmpty(t, summaries)

	pump := summaries[0]
	assert.Equal(t, PumpDeviceID, pump.ID)
	assert.Equal(t, PumpDeviceName, pump.Name)
	assert.Equal(t, StatusOnline, pump.Status)
	require.NotNil(t, pump.LastHeartbeat)

	var temp *DeviceSummary
	for i := range summaries {
		if summaries[i].ID == location {
			temp = &summaries[i]
		}
	}
	require.NotNil(t, temp, "expected a summary for the seeded location")
	assert.Equal(t, 36.5, temp.CurrentValue, "latest reading per location wins")
	assert.Equal(t, StatusWarning, temp.Status)
	assert.Equal(t, 12, temp.MinutesAgo)
	assert.Equal(t, location, temp.Details["location"])
}

func TestDeviceSummaries_NoPumpData(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	// a fresh install has no pump runs and no heartbeats
	require.NoError(t, m.Home.Db.Conn.Exec("DELETE FROM pump_run_times").Error)
	require.NoError(t, m.Home.Db.Conn.Exec("DELETE FROM device_heartbeats").Error)

	now := time.Now()
	location := "loc-" + uuid.NewString()
	require.NoError(t, m.Home.Db.Conn.Create(&models.TemperatureReading{
		Value: 34.0, Location: location, Timestamp: now.Add(-time.Minute),
	}).Error)

	summaries, err := m.Home.Device.DeviceSummaries(now)
	require.NoError(t, err)

	for _, s := range summaries {
		assert.NotEqual(t, PumpDeviceID, s.ID, "a pump the system never heard from gets no card")
	}

	var temp *DeviceSummary
	for i := range summaries {
		if summaries[i].ID == location {
			temp = &summaries[i]
		}
	}
	require.NotNil(t, temp)
	assert.Equal(t, StatusOnline, temp.Status)
}

func TestLatestSustainedLowWindow(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	base := time.Now().Add(-24 * time.Hour)

	// two low-current runs 2 hours apart: a sustained window
	first := base.Add(1 * time.Hour)
	second := base.Add(3 * time.Hour)
	require.NoError(t, m.Home.Db.Conn.Create(&models.PumpRunTimeCritical{
		RunTime: 30, Current: 2.0, LowCurrent: true, Timestamp: first,
	}).Error)
	require.NoError(t, m.Home.Db.Conn.Create(&models.PumpRunTimeCritical{
		RunTime: 30, Current: 2.1, LowCurrent: true, Timestamp: second,
	}).Error)

	ts, err := m.Home.latestSustainedLowWindow()
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.WithinDuration(t, first, *ts, time.Second)
}

func TestTemperatureHistoryAndDevices(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	now := time.Now()
	location := "loc-" + uuid.NewString()

	for i := 0; i < 5; i++ {
		require.NoError(t, m.Home.Db.Conn.Create(&models.TemperatureReading{
			Value:     30.0 + float64(i),
			Location:  location,
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
		}).Error)
	}

	history, err := m.Home.Device.TemperatureHistory(location, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp), "newest first")

	devices, err := m.Home.Device.TemperatureDevices()
	require.NoError(t, err)

	var mine *TemperatureDevice
	for i := range devices {
		if devices[i].Location == location {
			mine = &devices[i]
		}
	}
	require.NotNil(t, mine)
	assert.Equal(t, 30.0, mine.SuggestedThreshold, "suggested threshold is the latest value")
}

func TestSnapshots(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	now := time.Now()
	location := "loc-" + uuid.NewString()

	require.NoError(t, m.Home.Db.Conn.Create(&models.TemperatureReading{
		Value: 85.0, Location: location, Timestamp: now.Add(-time.Minute),
	}).Error)

	snap, err := m.Home.Device.TemperatureSnapshot(location)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceKindTemperature, snap.Kind)
	require.NotNil(t, snap.CurrentValue)
	assert.Equal(t, 85.0, *snap.CurrentValue)

	_, err = m.Home.Device.TemperatureSnapshot("loc-" + uuid.NewString())
	assert.Error(t, err, "unknown location has no snapshot")

	pump, err := m.Home.Device.PumpSnapshot()
	require.NoError(t, err)
	assert.Equal(t, models.DeviceKindPump, pump.Kind)
	assert.Equal(t, PumpDeviceID, pump.ID)
}
