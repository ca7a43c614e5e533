package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	SupportAddr  string `mapstructure:"support_addr"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PaymentConfig describes the hosted payment surface and the trust boundary
// around its cross-document messages.
type PaymentConfig struct {
	// SurfaceURLTemplate is expanded with the session parameters to build the
	// iframe URL. Placeholders: {record}, {domain}, {email}.
	SurfaceURLTemplate string `mapstructure:"surface_url_template"`
	// ProviderOrigin is the only origin whose signals are trusted.
	ProviderOrigin string `mapstructure:"provider_origin"`
	// LoadTimeout bounds how long the bridge waits for the surface to signal
	// readiness before force-revealing it.
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
	// SuccessCloseDelay is how long the confirmation state stays visible
	// before the session auto-closes. UX parameter, not a correctness one.
	SuccessCloseDelay time.Duration `mapstructure:"success_close_delay"`
	// SessionTTL bounds how long an open session is tracked in the index.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type SubscriptionConfig struct {
	DurationDays int `mapstructure:"duration_days"`
}

type StorageConfig struct {
	RootDir       string `mapstructure:"root_dir"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type JobsConfig struct {
	// Token is the bearer shared secret for the scheduled job endpoint.
	Token string `mapstructure:"token"`
}
