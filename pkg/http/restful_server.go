package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"homeiota.xyz/home-monitor-service/pkg/home"
)

type RestfulServer struct {
	Server           *gin.Engine
	Home             *home.Home
	RateLimiterStore *home.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(rs.SessionMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("/devices", rs.GetDevices)
		api.GET("/devices/pump/critical", rs.GetPumpCritical)
		api.GET("/devices/:device_id", rs.GetDeviceHistory)
		api.GET("/temperature-devices", rs.GetTemperatureDevices)
		api.POST("/test-notifications", rs.PostTestNotification)
		api.GET("/user-preference", rs.RequireAuth(), rs.GetUserPreference)
		api.GET("/alerts", rs.RequireAuth(), rs.GetUserAlerts)
	}

	rs.Server.POST("/auth", rs.PostAuth)
	rs.Server.POST("/auth/logout", rs.PostLogout)
	rs.Server.POST("/settings", rs.RequireAuth(), rs.PostSettings)

	// device-facing ingest endpoints
	rs.Server.POST("/tempmon", rs.PostTemperature)
	rs.Server.GET("/tempmon", rs.ListTemperatures)
	rs.Server.GET("/tempmon/:id", rs.GetTemperature)
	rs.Server.DELETE("/tempmon/:id", rs.DeleteTemperature)
	rs.Server.POST("/pumpmon", rs.PostPumpRun)
	rs.Server.GET("/pumpmon", rs.ListPumpRuns)
	rs.Server.GET("/pumpmon/:id", rs.GetPumpRun)
	rs.Server.DELETE("/pumpmon/:id", rs.DeletePumpRun)
	rs.Server.POST("/heartbeat", rs.PostHeartbeat)
	rs.Server.POST("/devices/:device_id/limiter", rs.PostLimiter)
}
