package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogAdapterConfig configures one logging output adapter
type LogAdapterConfig struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Ingest struct {
		MaxUploadSize  int64 `yaml:"max_upload_size"`  // bytes, multipart upload cap
		MaxRejections  int   `yaml:"max_rejections"`   // rejections echoed back per upload report
		FetchOnStartup bool  `yaml:"fetch_on_startup"` // publish from the canonical source at boot
	} `yaml:"ingest"`

	Source struct {
		URL            string        `yaml:"url"` // canonical spreadsheet location
		Timeout        time.Duration `yaml:"timeout"`
		RefreshPerHour int           `yaml:"refresh_per_hour"` // rate limit on manual refreshes
	} `yaml:"source"`

	Diagnostics struct {
		Enabled    bool `yaml:"enabled"`     // record rejections in Redis
		MaxEntries int  `yaml:"max_entries"` // capped rejection history length
	} `yaml:"diagnostics"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"redis"`

	Logging struct {
		Level    string             `yaml:"level"`
		Format   string             `yaml:"format"`
		Adapters []LogAdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Ingest.MaxUploadSize = 5 * 1024 * 1024
	config.Ingest.MaxRejections = 50
	config.Ingest.FetchOnStartup = true

	config.Source.Timeout = 30 * time.Second
	config.Source.RefreshPerHour = 60

	config.Diagnostics.Enabled = false
	config.Diagnostics.MaxEntries = 500

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			defaults := *config
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
			config.resetUnresolved(&defaults)
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// resetUnresolved restores coded defaults for string values whose ${VAR}
// placeholder had no environment value, so a templated config.yaml cannot
// clobber a default with a literal placeholder.
func (c *Config) resetUnresolved(defaults *Config) {
	if unresolvedVar(c.Source.URL) {
		c.Source.URL = defaults.Source.URL
	}
	if unresolvedVar(c.Redis.URL) {
		c.Redis.URL = defaults.Redis.URL
	}
	if unresolvedVar(c.Redis.Password) {
		c.Redis.Password = defaults.Redis.Password
	}
}

func unresolvedVar(value string) bool {
	return strings.Contains(value, "${")
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if sourceURL := os.Getenv("SOURCE_URL"); sourceURL != "" {
		c.Source.URL = sourceURL
	}

	if sourceTimeout := os.Getenv("SOURCE_TIMEOUT"); sourceTimeout != "" {
		if timeout, err := time.ParseDuration(sourceTimeout); err == nil {
			c.Source.Timeout = timeout
		}
	}

	if refresh := os.Getenv("SOURCE_REFRESH_PER_HOUR"); refresh != "" {
		if n, err := strconv.Atoi(refresh); err == nil {
			c.Source.RefreshPerHour = n
		}
	}

	if maxUpload := os.Getenv("INGEST_MAX_UPLOAD_SIZE"); maxUpload != "" {
		if n, err := strconv.ParseInt(maxUpload, 10, 64); err == nil {
			c.Ingest.MaxUploadSize = n
		}
	}

	if fetchOnStartup := os.Getenv("INGEST_FETCH_ON_STARTUP"); fetchOnStartup != "" {
		c.Ingest.FetchOnStartup = fetchOnStartup == "true" || fetchOnStartup == "1"
	}

	if diagEnabled := os.Getenv("DIAGNOSTICS_ENABLED"); diagEnabled != "" {
		c.Diagnostics.Enabled = diagEnabled == "true" || diagEnabled == "1"
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}
}
