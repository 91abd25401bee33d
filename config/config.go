package config

import (
	"foodmenu_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:         getEnvAsString("APP_NAME", "Foodmenu_no_env"),
				Environment:     getEnvAsString("APP_ENV", "development"),
				Port:            getEnvAsString("APP_PORT", ":8080"),
				ReadTimeout:     getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				ShutdownTimeout: getEnvAsTimeDuration("SERVER_SHUTDOWN_TIME_OUT", 10*time.Second),
				MaxHeaderBytes:  getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
				MaxBodyBytes:    int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 2<<20)),
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"}),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Driver:       getEnvAsString("DB_DRIVER", "pgdriver"),
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "foodmenu_db"),
				SSLMode:      getEnvAsBool("DB_SSL", false),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
				SlowQuery:    getEnvAsTimeDuration("DB_SLOW_QUERY", time.Second),
				AutoMigrate:  getEnvAsBool("DB_AUTO_MIGRATE", false),
			},
			Cache: &structs.CacheConfig{
				Enabled:         getEnvAsBool("CACHE_ENABLED", true),
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
				CatalogTTL:      getEnvAsTimeDuration("CACHE_CATALOG_TTL", 5*time.Minute),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
				OrderLimit:    getEnvAsInt("RATE_LIMIT_ORDERS", 20),
				OrderWindow:   getEnvAsTimeDuration("RATE_LIMIT_ORDERS_WINDOW", time.Minute),
			},
			Auth: &structs.AuthConfig{
				Mode:          getEnvAsString("AUTH_MODE", "remote"),
				ValidationURL: getEnvAsString("AUTH_API", ""),
				Timeout:       getEnvAsTimeDuration("AUTH_TIMEOUT", 2*time.Second),
				JWTSecret:     getEnvAsString("AUTH_JWT_SECRET", "default_access_secret"),
			},
			Broker: &structs.BrokerConfig{
				Enabled:  getEnvAsBool("BROKER_ENABLED", false),
				Host:     getEnvAsString("RABBITMQ_HOST", "localhost"),
				Port:     getEnvAsInt("RABBITMQ_PORT", 5672),
				User:     getEnvAsString("RABBITMQ_USER", "guest"),
				Password: getEnvAsString("RABBITMQ_PASSWORD", "guest"),
				VHost:    getEnvAsString("RABBITMQ_VHOST", "/"),
				UseTLS:   getEnvAsBool("RABBITMQ_TLS", false),
				Exchange: getEnvAsString("RABBITMQ_EXCHANGE", "orders_topic"),
			},
			Email: &structs.EmailConfig{
				Enabled:    getEnvAsBool("EMAIL_ENABLED", false),
				ApiKey:     getEnvAsString("RESEND_API_KEY", ""),
				From:       getEnvAsString("EMAIL_FROM", "orders@foodmenu.local"),
				Recipients: getEnvAsSlice("EMAIL_STAFF_RECIPIENTS", []string{}),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
