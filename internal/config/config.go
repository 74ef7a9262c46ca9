package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Blob     BlobConfig     `yaml:"blob"`
	Import   ImportConfig   `yaml:"import"`
	Web      WebConfig      `yaml:"web"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// SlowQueryThreshold logs queries running longer than this; zero disables it.
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"500ms"`
}

// AuthConfig holds admin authentication settings. There is a single admin
// account; its password is stored as a bcrypt hash.
type AuthConfig struct {
	AdminUsername     string        `yaml:"admin_username"      env:"AUTH_ADMIN_USERNAME"      env-default:"admin"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH" env-required:"true"`
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"adaptation-catalog"`
	TokenTTL          time.Duration `yaml:"token_ttl"           env:"AUTH_TOKEN_TTL"           env-default:"12h"`
	// LoginRatePerMinute limits login attempts per client address.
	LoginRatePerMinute int `yaml:"login_rate_per_minute" env:"AUTH_LOGIN_RATE_PER_MINUTE" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// BlobConfig selects and configures the image store.
type BlobConfig struct {
	Driver         string `yaml:"driver"           env:"BLOB_DRIVER"           env-default:"fs"`
	FSRoot         string `yaml:"fs_root"          env:"BLOB_FS_ROOT"          env-default:"./media"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"BLOB_MAX_UPLOAD_BYTES" env-default:"10485760"`

	S3Bucket          string `yaml:"s3_bucket"            env:"BLOB_S3_BUCKET"`
	S3Region          string `yaml:"s3_region"            env:"BLOB_S3_REGION"            env-default:"eu-central-1"`
	S3Endpoint        string `yaml:"s3_endpoint"          env:"BLOB_S3_ENDPOINT"`
	S3PathStyle       bool   `yaml:"s3_path_style"        env:"BLOB_S3_PATH_STYLE"        env-default:"false"`
	S3AccessKeyID     string `yaml:"s3_access_key_id"     env:"BLOB_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `yaml:"s3_secret_access_key" env:"BLOB_S3_SECRET_ACCESS_KEY"`
}

// ImportConfig holds spreadsheet import settings.
type ImportConfig struct {
	MaxFileBytes int64 `yaml:"max_file_bytes" env:"IMPORT_MAX_FILE_BYTES" env-default:"20971520"`
	// MaxReportedWarnings caps the warnings kept in one import report.
	MaxReportedWarnings int `yaml:"max_reported_warnings" env:"IMPORT_MAX_REPORTED_WARNINGS" env-default:"1000"`
}

// WebConfig holds public site settings.
type WebConfig struct {
	DefaultLocale string `yaml:"default_locale" env:"WEB_DEFAULT_LOCALE" env-default:"en"`
	// CookieSecure marks the language cookie Secure.
	CookieSecure bool `yaml:"cookie_secure" env:"WEB_COOKIE_SECURE" env-default:"false"`
}

// CORSConfig holds CORS settings for the admin API.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
