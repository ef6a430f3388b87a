package models

// Config holds the full application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Paystack PaystackConfig
	Email    EmailConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// APIKeyConfig holds the keys accepted on privileged internal endpoints
type APIKeyConfig struct {
	NotificationKey string
}

// PaystackConfig holds payment processor configuration
type PaystackConfig struct {
	BaseURL     string
	SecretKey   string
	Currency    string
	CallbackURL string
}

// EmailConfig holds transactional email provider configuration
type EmailConfig struct {
	BaseURL     string
	APIKey      string
	FromName    string
	FromAddress string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
