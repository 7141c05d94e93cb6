package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/joho/godotenv"
)

const (
	defaultPort            = "5000"
	defaultFrontendURL     = "*"
	defaultPublicDir       = "public"
	defaultDriveTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultDriveUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
)

var portRegex = regexp.MustCompile(`^\d{1,5}$`)

// Config holds the runtime configuration read from the environment
type Config struct {
	Env         string
	Port        string
	FrontendURL string
	PublicDir   string

	// Drive authentication: API key for public files or a Service Account JSON file
	DriveAPIKey     string
	CredentialsPath string
	DriveUserAgent  string
	DriveTimeout    time.Duration

	CertificatesFolderID string
	ToolsFileID          string
	EducationFileID      string
	SkillsFileID         string
	ResumeFileID         string

	ShutdownTimeout time.Duration
}

// LoadEnvFile loads .env in development (ignores error if file doesn't exist).
// In production, variables should be set directly
func LoadEnvFile(path string) {
	if os.Getenv("ENV") == "production" {
		return
	}

	// Use Overload to ensure .env values override system environment variables
	if err := godotenv.Overload(path); err != nil {
		log.Printf("⚠️  .env file not found at %s, using system environment variables", path)
		return
	}
	log.Printf("✓ Loaded environment variables from %s (overriding system variables)", path)
}

// Load reads the configuration from environment variables and validates it
func Load() (*Config, error) {
	driveTimeout, err := getDuration("DRIVE_TIMEOUT", defaultDriveTimeout)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                  getEnv("ENV", ""),
		Port:                 strings.TrimPrefix(getEnv("PORT", defaultPort), ":"),
		FrontendURL:          getEnv("FRONTEND_URL", defaultFrontendURL),
		PublicDir:            getEnv("PUBLIC_DIR", defaultPublicDir),
		DriveAPIKey:          getEnv("DRIVE_API_KEY", ""),
		CredentialsPath:      getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DriveUserAgent:       getEnv("DRIVE_USER_AGENT", defaultDriveUserAgent),
		DriveTimeout:         driveTimeout,
		CertificatesFolderID: getEnv("CERTIFICATES_FOLDER_ID", ""),
		ToolsFileID:          getEnv("TOOLS_FILE_ID", ""),
		EducationFileID:      getEnv("EDUCATION_FILE_ID", ""),
		SkillsFileID:         getEnv("SKILLS_FILE_ID", ""),
		ResumeFileID:         getEnv("RESUME_FILE_ID", ""),
		ShutdownTimeout:      shutdownTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.warnMissing()
	return cfg, nil
}

// Validate checks the values the server cannot start without
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Match(portRegex)),
		validation.Field(&c.FrontendURL, validation.Required, validation.By(originRule)),
		validation.Field(&c.PublicDir, validation.Required),
		validation.Field(&c.DriveTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.ShutdownTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// Addr returns the listen address.
// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// originRule accepts "*" or an absolute URL
func originRule(value interface{}) error {
	origin, _ := value.(string)
	if origin == "*" {
		return nil
	}
	return is.URL.Validate(origin)
}

// warnMissing logs unset identifiers. Routes depending on them fail per request
func (c *Config) warnMissing() {
	if c.DriveAPIKey == "" && c.CredentialsPath == "" {
		log.Printf("⚠️  Neither DRIVE_API_KEY nor GOOGLE_APPLICATION_CREDENTIALS is set, Drive calls are unauthenticated")
	}

	ids := []struct {
		name  string
		value string
	}{
		{"CERTIFICATES_FOLDER_ID", c.CertificatesFolderID},
		{"TOOLS_FILE_ID", c.ToolsFileID},
		{"EDUCATION_FILE_ID", c.EducationFileID},
		{"SKILLS_FILE_ID", c.SkillsFileID},
		{"RESUME_FILE_ID", c.ResumeFileID},
	}
	for _, id := range ids {
		if id.value == "" {
			log.Printf("⚠️  %s is not set", id.name)
		}
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
