package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is the envconfig namespace shared by every variable.
	EnvPrefix = "shopline"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SHOPLINE_DB_DSN"
	EnvDBHost = "SHOPLINE_DB_HOST"
	EnvDBUser = "SHOPLINE_DB_USER"
	EnvDBName = "SHOPLINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
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
	Env          string `envconfig:"SHOPLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPLINE_DB_DSN"`
	Driver string `envconfig:"SHOPLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPLINE_DB_USER"`
	LegacyPassword string `envconfig:"SHOPLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret string `envconfig:"SHOPLINE_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"SHOPLINE_JWT_ISSUER" required:"true"`
	// Tokens stay valid for 10 hours unless overridden.
	ExpirationMinutes int `envconfig:"SHOPLINE_JWT_EXPIRATION_MINUTES" default:"600"`
}

// TokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHOPLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHOPLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHOPLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHOPLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHOPLINE_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPLINE_AUTO_MIGRATE" default:"false"`
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
