package config

// EnvPrefix is intentionally empty: every field names its env var explicitly.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "GYM_APP_ENV"
	EnvPort       = "GYM_APP_PORT"
	EnvDBDSN      = "GYM_DB_DSN"
	EnvDBHost     = "GYM_DB_HOST"
	EnvDBUser     = "GYM_DB_USER"
	EnvDBName     = "GYM_DB_NAME"
	EnvRedisURL   = "GYM_REDIS_URL"
	EnvJWTSecret  = "GYM_JWT_SECRET"
	EnvJWTIssuer  = "GYM_JWT_ISSUER"
	EnvJWTExpMins = "GYM_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
