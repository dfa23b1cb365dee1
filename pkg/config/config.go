package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SUPPLYDASH_DB_DSN"
	EnvDBHost = "SUPPLYDASH_DB_HOST"
	EnvDBUser = "SUPPLYDASH_DB_USER"
	EnvDBName = "SUPPLYDASH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Retry        RetryConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SUPPLYDASH_APP_ENV" default:"dev"`
	Port         string `envconfig:"SUPPLYDASH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SUPPLYDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SUPPLYDASH_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"SUPPLYDASH_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SUPPLYDASH_DB_DSN"`
	Driver string `envconfig:"SUPPLYDASH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SUPPLYDASH_DB_HOST"`
	LegacyPort     int    `envconfig:"SUPPLYDASH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SUPPLYDASH_DB_USER"`
	LegacyPassword string `envconfig:"SUPPLYDASH_DB_PASSWORD"`
	LegacyName     string `envconfig:"SUPPLYDASH_DB_NAME"`
	LegacySSLMode  string `envconfig:"SUPPLYDASH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SUPPLYDASH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SUPPLYDASH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SUPPLYDASH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SUPPLYDASH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RetryConfig bounds the transient-failure retry policy around cascade units.
type RetryConfig struct {
	MaxAttempts uint64        `envconfig:"SUPPLYDASH_RETRY_MAX_ATTEMPTS" default:"5"`
	BaseDelay   time.Duration `envconfig:"SUPPLYDASH_RETRY_BASE_DELAY" default:"100ms"`
	MaxDelay    time.Duration `envconfig:"SUPPLYDASH_RETRY_MAX_DELAY" default:"2s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SUPPLYDASH_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
