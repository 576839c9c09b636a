package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHomeDBType string = "HOME_DB_TYPE"
	EnvKeyHomeDbDSN  string = "HOME_DB_DSN"
	EnvKeyHomeDbPath string = "HOME_DB_PATH"

	EnvKeyHomeHttpHostPort string = "HOME_HTTP_HOST_PORT"

	EnvKeyHomeDefaultRate  string = "HOME_DEFAULT_RATE"
	EnvKeyHomeDefaultBurst string = "HOME_DEFAULT_BURST"

	EnvKeyGotifyURL    string = "GOTIFY_URL"
	EnvKeyGotifyToken  string = "GOTIFY_TOKEN"
	EnvKeyDashboardURL string = "DASHBOARD_URL"

	LoggerNameHomeCore      string = "home_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameNotify        string = "notify"
	LoggerFieldCategory     string = "category"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryAlert     string = "alert"
	LoggerCategorySession   string = "session"
	LoggerCategoryUser      string = "user"
	LoggerCategoryPrefs     string = "preference"
	LoggerCategoryIngest    string = "ingest"
)
