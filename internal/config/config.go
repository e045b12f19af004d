package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Audit    AuditConfig    `yaml:"audit"`
	Lookup   LookupConfig   `yaml:"lookup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	APIPrefix       string        `yaml:"api_prefix"       env:"SERVER_API_PREFIX"       env-default:"/api/v1"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	LoginRateLimit  int           `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"20"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30s"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"2s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"bookflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	AnonymousTTL   time.Duration `yaml:"anonymous_ttl"    env:"AUTH_ANONYMOUS_TTL"    env-default:"2h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuditConfig holds the audit outbox settings.
type AuditConfig struct {
	QueueSize    int           `yaml:"queue_size"    env:"AUDIT_QUEUE_SIZE"    env-default:"1024"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"AUDIT_WRITE_TIMEOUT" env-default:"5s"`
	DrainTimeout time.Duration `yaml:"drain_timeout" env:"AUDIT_DRAIN_TIMEOUT" env-default:"5s"`
	AMQPURL      string        `yaml:"amqp_url"      env:"AUDIT_AMQP_URL"`
	AMQPExchange string        `yaml:"amqp_exchange" env:"AUDIT_AMQP_EXCHANGE" env-default:"bookflow.audit"`
}

// LookupConfig holds the reference-data cache settings.
type LookupConfig struct {
	RefreshSchedule string `yaml:"refresh_schedule" env:"LOOKUP_REFRESH_SCHEDULE" env-default:"@every 10m"`
}
