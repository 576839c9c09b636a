package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"homeiota.xyz/home-monitor-service/pkg/notify"
)

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Home.Device.DeviceSummaries(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

func (rs *RestfulServer) GetPumpCritical(c *gin.Context) {
	rows, err := rs.Home.Device.CriticalPumpHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deviceCritical": rows})
}

const temperatureHistoryLimit = 10000

func (rs *RestfulServer) GetDeviceHistory(c *gin.Context) {
	deviceID := c.Param("device_id")

	if deviceID == "pump" {
		runs, err := rs.Home.Device.PumpHistory()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
			return
		}
		if len(runs) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"device": runs})
		return
	}

	readings, err := rs.Home.Device.TemperatureHistory(deviceID, temperatureHistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	if len(readings) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"device": readings})
}

func (rs *RestfulServer) GetTemperatureDevices(c *gin.Context) {
	devices, err := rs.Home.Device.TemperatureDevices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

type TestNotificationRequest struct {
	Type      string  `json:"type"`
	DeviceID  string  `json:"deviceId"`
	Threshold float64 `json:"threshold"`
}

var testNotificationSchema = z.Struct(z.Shape{
	"Type":      z.String().Required(),
	"DeviceID":  z.String(),
	"Threshold": z.Float64(),
})

const testNotificationDelta = 5

// PostTestNotification sends a synthetic alert so the user can verify their
// gotify setup end to end. No alert row is recorded.
func (rs *RestfulServer) PostTestNotification(c *gin.Context) {
	var req TestNotificationRequest
	if err := testNotificationSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	deviceName := req.DeviceID
	if deviceName == "" {
		deviceName = "Test Device"
	}

	var title, message string
	var priority int
	var successMessage string

	switch req.Type {
	case "temperature":
		threshold := req.Threshold
		if threshold == 0 {
			threshold = 80
		}
		title, message = notify.TemperatureAlert(deviceName, threshold+testNotificationDelta, threshold)
		priority = notify.PriorityTemperature
		successMessage = "Temperature alert sent"
	case "offline":
		title, message = notify.OfflineAlert(deviceName, 10)
		priority = notify.PriorityOffline
		successMessage = "Offline alert sent"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification type"})
		return
	}

	channelKey := ""
	if user := CurrentUser(c); user != nil {
		channelKey = user.GotifyToken
	}
	if err := rs.Home.Notifier.Send(c.Request.Context(), channelKey, title, message, priority); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": successMessage})
}

func (rs *RestfulServer) GetUserPreference(c *gin.Context) {
	user := CurrentUser(c)

	prefs, err := rs.Home.Preference.GetPreferences(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (rs *RestfulServer) GetUserAlerts(c *gin.Context) {
	user := CurrentUser(c)

	alerts, err := rs.Home.Alert.GetUserAlerts(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
