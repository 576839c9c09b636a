package home

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
	_ "homeiota.xyz/home-monitor-service/pkg/testing"
)

func seedUser(t *testing.T, m *MockHome) *models.User {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", uuid.NewString())
	user, err := m.Home.Account.Register(email, "Test User", "hunter22")
	require.NoError(t, err)
	return user
}

func TestSessionRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	session, err := m.Home.Session.CreateSession(user.ID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), session.ExpiresAt, time.Minute)

	fetched, err := m.Home.Session.GetSession(session.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.ID, fetched.UserID)
	assert.Equal(t, user.Email, fetched.User.Email)
}

func TestGetSession_Expired(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	session, err := m.Home.Session.CreateSession(user.ID)
	require.NoError(t, err)

	// push expiry into the past
	err = m.Home.Db.Conn.Model(&models.Session{}).
		Where("id = ?", session.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	require.NoError(t, err)

	fetched, err := m.Home.Session.GetSession(session.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	// expiry detection removed the row
	var count int64
	err = m.Home.Db.Conn.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetSession_Unknown(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	fetched, err := m.Home.Session.GetSession(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	m := GetMockHomeWithMemorySqliteDialector(t)
	defer m.Ctrl.Finish()

	user := seedUser(t, m)

	session, err := m.Home.Session.CreateSession(user.ID)
	require.NoError(t, err)

	assert.NoError(t, m.Home.Session.DeleteSession(session.ID))
	// second delete on an already-absent id is still a success
	assert.NoError(t, m.Home.Session.DeleteSession(session.ID))

	fetched, err := m.Home.Session.GetSession(session.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
