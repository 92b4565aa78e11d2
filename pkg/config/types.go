package config

type Config struct {
	// Server settings
	Server ServerConfig `json:"server"`

	// Database settings
	Database DatabaseConfig `json:"database"`

	// Security settings
	Security SecurityConfig `json:"security"`

	// Logging settings
	Logging LoggingConfig `json:"logging"`

	// Outbound mail settings
	Mail MailConfig `json:"mail"`

	// Upload storage settings
	Uploads UploadConfig `json:"uploads"`
}

type ServerConfig struct {
	Host         string `json:"host" default:"localhost"`
	Port         int    `json:"port" default:"3000"`
	ReadTimeout  int    `json:"read_timeout" default:"30"`  // seconds
	WriteTimeout int    `json:"write_timeout" default:"30"` // seconds
	IdleTimeout  int    `json:"idle_timeout" default:"120"` // seconds
	GracefulStop int    `json:"graceful_stop" default:"30"` // seconds
}

type DatabaseConfig struct {
	Driver   string `json:"driver" default:"sqlite"` // sqlite, postgres
	Host     string `json:"host" default:"localhost"`
	Port     int    `json:"port" default:"5432"`
	Database string `json:"database" default:"yatrimap.db"`
	Username string `json:"username"`
	Password string `json:"password"`
	SSLMode  string `json:"ssl_mode" default:"disable"`

	// Connection pool settings
	MaxOpenConns    int `json:"max_open_conns" default:"25"`
	MaxIdleConns    int `json:"max_idle_conns" default:"5"`
	ConnMaxLifetime int `json:"conn_max_lifetime" default:"300"` // seconds
}

type SecurityConfig struct {
	JWTSecret           string `json:"jwt_secret"`
	JWTExpirationHours  int    `json:"jwt_expiration_hours" default:"24"`
	ResetTokenMinutes   int    `json:"reset_token_minutes" default:"30"`
	BcryptCost          int    `json:"bcrypt_cost" default:"10"`
	SessionCookieName   string `json:"session_cookie_name" default:"yatrimap_session"`
	SessionCookieSecure bool   `json:"session_cookie_secure" default:"true"`

	// Rate limiting
	RateLimitEnabled   bool `json:"rate_limit_enabled" default:"true"`
	RateLimitPerMinute int  `json:"rate_limit_per_minute" default:"120"`
	RateLimitBurstSize int  `json:"rate_limit_burst_size" default:"20"`

	// Origins allowed to call the API from a browser
	AllowedOrigins []string `json:"allowed_origins"`

	// Seeded back-office account; skipped when either field is empty
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

type LoggingConfig struct {
	Level      string `json:"level" default:"info"`    // debug, info, warn, error
	Format     string `json:"format" default:"json"`   // json, text
	Output     string `json:"output" default:"stdout"` // stdout, file
	FilePath   string `json:"file_path" default:"logs/yatrimap.log"`
	MaxSize    int    `json:"max_size" default:"100"` // MB
	MaxBackups int    `json:"max_backups" default:"3"`
	MaxAge     int    `json:"max_age" default:"28"` // days
	Compress   bool   `json:"compress" default:"true"`
}

type MailConfig struct {
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port" default:"587"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`

	WorkerCount     int `json:"worker_count" default:"2"`
	RetryAttempts   int `json:"retry_attempts" default:"3"`
	RetryBackoffMin int `json:"retry_backoff_min" default:"5"`   // seconds
	RetryBackoffMax int `json:"retry_backoff_max" default:"300"` // seconds
}

type UploadConfig struct {
	DestinationImageDir string `json:"destination_image_dir" default:"storage/destinations_image"`
	AccommodationDir    string `json:"accommodation_dir" default:"storage/uploads"`
	MaxSizeMB           int    `json:"max_size_mb" default:"8"`
}
