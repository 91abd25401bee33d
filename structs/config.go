package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Auth      *AuthConfig
	Broker    *BrokerConfig
	Email     *EmailConfig
}

type ServerConfig struct {
	AppName         string        // Foodmenu
	Environment     string        // development, production
	Port            string        // :8080
	ReadTimeout     time.Duration // in seconds
	WriteTimeout    time.Duration // in seconds
	IdleTimeout     time.Duration // in seconds
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int // in bytes
	MaxBodyBytes    int64
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

type DatabaseConfig struct {
	Driver       string // pgdriver or pgx
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      bool
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	SlowQuery    time.Duration
	AutoMigrate  bool
}

type CacheConfig struct {
	Enabled         bool
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	CatalogTTL      time.Duration // product and item lookups
}

type RateLimitConfig struct {
	Enabled       bool
	GeneralLimit  int
	GeneralWindow time.Duration
	OrderLimit    int
	OrderWindow   time.Duration
}

type AuthConfig struct {
	Mode          string // remote, jwt, disabled
	ValidationURL string
	Timeout       time.Duration
	JWTSecret     string
}

type BrokerConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
	UseTLS   bool
	Exchange string
}

type EmailConfig struct {
	Enabled    bool
	ApiKey     string
	From       string
	Recipients []string
}
