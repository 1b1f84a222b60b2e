package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Mail          MailConfig
	Reminder      ReminderConfig
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
	Env          string `envconfig:"GYM_APP_ENV" required:"true"`
	Port         string `envconfig:"GYM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GYM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GYM_LOG_WARN_STACK" default:"false"`
	// CORSOrigins extends the localhost defaults with deployed frontends.
	CORSOrigins []string `envconfig:"GYM_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GYM_DB_DSN"`
	Driver string `envconfig:"GYM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GYM_DB_HOST"`
	LegacyPort     int    `envconfig:"GYM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GYM_DB_USER"`
	LegacyPassword string `envconfig:"GYM_DB_PASSWORD"`
	LegacyName     string `envconfig:"GYM_DB_NAME"`
	LegacySSLMode  string `envconfig:"GYM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GYM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GYM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GYM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GYM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GYM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GYM_REDIS_ADDR"`
	Password     string        `envconfig:"GYM_REDIS_PASSWORD"`
	DB           int           `envconfig:"GYM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GYM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GYM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GYM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GYM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GYM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GYM_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GYM_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GYM_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"GYM_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GYM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GYM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GYM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GYM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GYM_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"GYM_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit    int           `envconfig:"GYM_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"GYM_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"GYM_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit    int           `envconfig:"GYM_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"GYM_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GYM_AUTO_MIGRATE" default:"false"`
}

type MailConfig struct {
	Host     string `envconfig:"GYM_MAIL_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"GYM_MAIL_PORT" default:"587"`
	Username string `envconfig:"GYM_MAIL_USERNAME"`
	Password string `envconfig:"GYM_MAIL_PASSWORD"`
	From     string `envconfig:"GYM_MAIL_FROM"`
	Enabled  bool   `envconfig:"GYM_MAIL_ENABLED" default:"false"`
}

type ReminderConfig struct {
	Interval   time.Duration `envconfig:"GYM_REMINDER_INTERVAL" default:"24h"`
	WindowDays int           `envconfig:"GYM_REMINDER_WINDOW_DAYS" default:"7"`
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
