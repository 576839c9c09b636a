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

func TestRecordTemperatureRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	location := "loc-" + uuid.NewString()
	now := time.Now()

	reading, err := m.Home.Ingest.RecordTemperature(72.5, location, now)
	require.NoError(t, err)
	require.NotZero(t, reading.ID)

	fetched, err := m.Home.Ingest.GetTemperature(reading.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, 72.5, fetched.Value)
	assert.Equal(t, location, fetched.Location)

	listed, err := m.Home.Ingest.ListTemperatures(location)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, m.Home.Ingest.DeleteTemperature(reading.ID))

	gone, err := m.Home.Ingest.GetTemperature(reading.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "deleted reading resolves to nil")
}

func TestRecordPumpRunMirrorsLowCurrent(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	now := time.Now()

	normal, err := m.Home.Ingest.RecordPumpRun(45, 8.2, false, now)
	require.NoError(t, err)
	require.NotZero(t, normal.ID)

	low, err := m.Home.Ingest.RecordPumpRun(30, 2.1, true, now)
	require.NoError(t, err)

	var critical models.PumpRunTimeCritical
	err = m.Home.Db.Conn.Where("timestamp = ? AND current = ?", low.Timestamp, low.Current).First(&critical).Error
	require.NoError(t, err, "low-current run lands in the critical table")
	assert.True(t, critical.LowCurrent)

	var count int64
	require.NoError(t, m.Home.Db.Conn.Model(&models.PumpRunTimeCritical{}).
		Where("timestamp = ? AND current = ?", normal.Timestamp, normal.Current).
		Count(&count).Error)
	assert.Zero(t, count, "normal runs are not mirrored")
}

func TestRecordHeartbeat(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	deviceID := "dev-" + uuid.NewString()
	now := time.Now()

	heartbeat, err := m.Home.Ingest.RecordHeartbeat(deviceID, true, now)
	require.NoError(t, err)
	require.NotZero(t, heartbeat.ID)

	var fetched models.DeviceHeartbeat
	require.NoError(t, m.Home.Db.Conn.First(&fetched, heartbeat.ID).Error)
	assert.Equal(t, deviceID, fetched.DeviceID)
	assert.True(t, fetched.Pump)
}

func TestGetPumpRunMissing(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	run, err := m.Home.Ingest.GetPumpRun(99999999)
	require.NoError(t, err)
	assert.Nil(t, run)
}
