package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
	_ "homeiota.xyz/home-monitor-service/pkg/testing"
)

func TestUpsertLocationPreferences(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	offline := 45.0
	err := m.Home.Preference.UpsertLocationPreferences(user.ID, []LocationPreferenceInput{
		{Name: "freezer", Threshold: 10, Enabled: true},
		{Name: "garage", Threshold: 90, Enabled: false, OfflineThreshold: &offline},
	})
	require.NoError(t, err)

	prefs, err := m.Home.Preference.GetPreferences(user.ID)
	require.NoError(t, err)
	require.Len(t, prefs.Locations, 2)
	assert.Equal(t, "freezer", prefs.Locations[0].Location)
	assert.Equal(t, 10.0, prefs.Locations[0].Threshold)
	require.NotNil(t, prefs.Locations[1].OfflineThreshold)
	assert.Equal(t, 45.0, *prefs.Locations[1].OfflineThreshold)

	// second upsert for the same location updates in place
	err = m.Home.Preference.UpsertLocationPreferences(user.ID, []LocationPreferenceInput{
		{Name: "freezer", Threshold: 15, Enabled: false},
	})
	require.NoError(t, err)

	prefs, err = m.Home.Preference.GetPreferences(user.ID)
	require.NoError(t, err)
	require.Len(t, prefs.Locations, 2)
	assert.Equal(t, 15.0, prefs.Locations[0].Threshold)
	assert.False(t, prefs.Locations[0].Enabled)
}

func TestUpdateThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	err := m.Home.Preference.UpdateThresholds(user.ID, models.AlertPreferences{
		TemperatureEnabled:  true,
		TemperatureValue:    80,
		OfflineEnabled:      true,
		OfflineGraceMinutes: 20,
	})
	require.NoError(t, err)

	prefs, err := m.Home.Preference.GetPreferences(user.ID)
	require.NoError(t, err)
	assert.True(t, prefs.Thresholds.TemperatureEnabled)
	assert.Equal(t, 80.0, prefs.Thresholds.TemperatureValue)
	assert.Equal(t, 20, prefs.Thresholds.OfflineGraceMinutes)
}

func TestUpdateProfile(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	err := m.Home.Preference.UpdateProfile(user.ID, "New Name", user.Email, "gotify-abc")
	require.NoError(t, err)

	var updated models.User
	err = m.Home.Db.Conn.First(&updated, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "gotify-abc", updated.GotifyToken)
}
