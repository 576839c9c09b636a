package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/db"
	"homeiota.xyz/home-monitor-service/pkg/home"
	homeHttp "homeiota.xyz/home-monitor-service/pkg/http"
	"homeiota.xyz/home-monitor-service/pkg/notify"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	homeDbType := os.Getenv(common.EnvKeyHomeDBType)
	switch homeDbType {
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HOME_DB_TYPE: " + homeDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHomeHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHomeDefaultRate), 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHomeDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	notifier := &notify.GotifyClient{
		BaseURL:      strings.TrimSpace(os.Getenv(common.EnvKeyGotifyURL)),
		Token:        strings.TrimSpace(os.Getenv(common.EnvKeyGotifyToken)),
		DashboardURL: strings.TrimSpace(os.Getenv(common.EnvKeyDashboardURL)),
	}
	if notifier.BaseURL == "" {
		logger.Warn("GOTIFY_URL is not set, alert delivery will fail until configured")
	}

	homeCore := home.Home{
		Db:       *dbInstance,
		Notifier: notifier,
	}
	homeCore.WithServices(home.ServiceOpts{
		Device:     homeCore.GetIDevice(),
		Alert:      homeCore.GetIAlert(),
		Session:    homeCore.GetISession(),
		Account:    homeCore.GetIAccount(),
		Ingest:     homeCore.GetIIngest(),
		Preference: homeCore.GetIPreference(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &homeHttp.RestfulServer{
		Server:           gin.Default(),
		Home:             &homeCore,
		RateLimiterStore: home.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
