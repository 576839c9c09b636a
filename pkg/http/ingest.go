package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/home"
)

func ingestLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)
}

// evaluateSnapshot runs the alert pass for a freshly ingested reading.
// Evaluation problems never fail the ingest; the reading is already stored.
func (rs *RestfulServer) evaluateSnapshot(c *gin.Context, snap *home.DeviceSnapshot) {
	logger := ingestLogger()

	results, err := rs.Home.Alert.EvaluateDevice(c.Request.Context(), snap, time.Now())
	if err != nil {
		logger.Error("Alert evaluation failed", zap.Error(err), zap.String("device_id", snap.ID))
		return
	}
	for _, result := range results {
		if result.Err != nil {
			logger.Warn("Alert delivery problem",
				zap.Error(result.Err),
				zap.String("user_id", result.UserID),
				zap.String("device_id", snap.ID))
		}
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

type TemperatureRequest struct {
	Value    float64 `json:"value"`
	Location string  `json:"location"`
}

var temperatureRequestSchema = z.Struct(z.Shape{
	"Value":    z.Float64().Required(),
	"Location": z.String().Required(),
})

func (rs *RestfulServer) PostTemperature(c *gin.Context) {
	var req TemperatureRequest
	if err := temperatureRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(req.Location) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, err := rs.Home.Ingest.RecordTemperature(req.Value, req.Location, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reading"})
		return
	}

	if snap, err := rs.Home.Device.TemperatureSnapshot(req.Location); err != nil {
		ingestLogger().Error("Failed to snapshot device", zap.Error(err), zap.String("location", req.Location))
	} else {
		rs.evaluateSnapshot(c, snap)
	}

	c.JSON(http.StatusCreated, reading)
}

func (rs *RestfulServer) ListTemperatures(c *gin.Context) {
	readings, err := rs.Home.Ingest.ListTemperatures(c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetTemperature(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reading, err := rs.Home.Ingest.GetTemperature(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	if reading == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (rs *RestfulServer) DeleteTemperature(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rs.Home.Ingest.DeleteTemperature(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reading"})
		return
	}

	c.Status(http.StatusNoContent)
}

type PumpRunRequest struct {
	RunTime    int     `json:"run_time"`
	Current    float64 `json:"current"`
	LowCurrent bool    `json:"low_current"`
}

var pumpRunRequestSchema = z.Struct(z.Shape{
	"RunTime":    z.Int().Required(),
	"Current":    z.Float64().Required(),
	"LowCurrent": z.Bool(),
})

func (rs *RestfulServer) PostPumpRun(c *gin.Context) {
	var req PumpRunRequest
	if err := pumpRunRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(home.PumpDeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	run, err := rs.Home.Ingest.RecordPumpRun(req.RunTime, req.Current, req.LowCurrent, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store run"})
		return
	}

	if snap, err := rs.Home.Device.PumpSnapshot(); err != nil {
		ingestLogger().Error("Failed to snapshot device", zap.Error(err), zap.String("device_id", home.PumpDeviceID))
	} else {
		rs.evaluateSnapshot(c, snap)
	}

	c.JSON(http.StatusCreated, run)
}

func (rs *RestfulServer) ListPumpRuns(c *gin.Context) {
	runs, err := rs.Home.Ingest.ListPumpRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, runs)
}

func (rs *RestfulServer) GetPumpRun(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	run, err := rs.Home.Ingest.GetPumpRun(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

func (rs *RestfulServer) DeletePumpRun(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rs.Home.Ingest.DeletePumpRun(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete run"})
		return
	}

	c.Status(http.StatusNoContent)
}

type HeartbeatRequest struct {
	DeviceID  string    `json:"device_id"`
	Pump      bool      `json:"pump"`
	Timestamp time.Time `json:"timestamp"`
}

var heartbeatRequestSchema = z.Struct(z.Shape{
	"DeviceID":  z.String().Required(),
	"Pump":      z.Bool(),
	"Timestamp": z.Time(),
})

func (rs *RestfulServer) PostHeartbeat(c *gin.Context) {
	var req HeartbeatRequest
	if err := heartbeatRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	pump := req.Pump || req.DeviceID == home.PumpDeviceID
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	heartbeat, err := rs.Home.Ingest.RecordHeartbeat(req.DeviceID, pump, ts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store heartbeat"})
		return
	}

	if pump {
		if snap, err := rs.Home.Device.PumpSnapshot(); err != nil {
			ingestLogger().Error("Failed to snapshot device", zap.Error(err), zap.String("device_id", home.PumpDeviceID))
		} else {
			rs.evaluateSnapshot(c, snap)
		}
	}

	c.JSON(http.StatusCreated, heartbeat)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
