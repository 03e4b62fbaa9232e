package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Query    QueryConfig
	Export   ExportConfig
	Webhook  WebhookConfig
}

type ServerConfig struct {
	Port string
	Mode string
	// DevMode exposes store error details in 500 responses.
	DevMode bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN builds a go-sql-driver/mysql connection string. parseTime makes DATE
// and DATETIME columns scan as time.Time instead of raw bytes.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type AuthConfig struct {
	// MasterKey is the process-wide API key. MasterKeyHash, when set, is a
	// bcrypt hash of the key and takes precedence over the plain value.
	MasterKey     string
	MasterKeyHash string
	JWTSecret     string
	TokenTTL      time.Duration
}

type QueryConfig struct {
	// StrictFilters pre-validates filter values against the catalog kind and
	// drops keys that do not coerce instead of binding them as-is.
	StrictFilters bool
	// PhotosOnDetail attaches sale photos on single-sale lookups without
	// requiring the include_photos flag.
	PhotosOnDetail bool
}

type ExportConfig struct {
	Dir           string
	ImageBaseURL  string
	DetailBaseURL string
}

type WebhookConfig struct {
	Secret string
	Script string
	Port   string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "3000"),
			Mode:    getEnv("GIN_MODE", "release"),
			DevMode: getEnvBool("DEV_MODE", false),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_DATABASE"),
		},
		Auth: AuthConfig{
			MasterKey:     os.Getenv("MASTER_API_KEY"),
			MasterKeyHash: os.Getenv("MASTER_API_KEY_HASH"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenTTL:      getEnvDuration("TOKEN_TTL", time.Hour),
		},
		Query: QueryConfig{
			StrictFilters:  getEnvBool("QUERY_STRICT_FILTERS", false),
			PhotosOnDetail: getEnvBool("PHOTOS_ON_DETAIL", false),
		},
		Export: ExportConfig{
			Dir:           getEnv("EXPORT_DIR", "/data"),
			ImageBaseURL:  getEnv("EXPORT_IMAGE_BASE_URL", "https://flota.example.com/uploa_d_ventas/"),
			DetailBaseURL: getEnv("EXPORT_DETAIL_BASE_URL", "https://flota.example.com/vehiculo/"),
		},
		Webhook: WebhookConfig{
			Secret: os.Getenv("WEBHOOK_SECRET"),
			Script: getEnv("WEBHOOK_RESTART_SCRIPT", "scripts/restart_service.sh"),
			Port:   getEnv("WEBHOOK_PORT", "1701"),
		},
	}
}

// Validate reports every missing required variable at once so a bad deploy
// fails with a complete list instead of one variable per restart.
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_HOST":     c.Database.Host,
		"DB_USER":     c.Database.User,
		"DB_PASSWORD": c.Database.Password,
		"DB_DATABASE": c.Database.Name,
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if c.Auth.MasterKey == "" && c.Auth.MasterKeyHash == "" {
		missing = append(missing, "MASTER_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
