package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens" default:"4096"`
		Temperature float32       `yaml:"temperature" default:"0.2"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"llm"`

	Catalog struct {
		Source          string `yaml:"source"`
		SkillsDelimiter string `yaml:"skills_delimiter" default:";"`
		LoadOnStartup   bool   `yaml:"load_on_startup" default:"false"`
	} `yaml:"catalog"`

	Matcher struct {
		MinScore    float64 `yaml:"min_score" default:"40"`
		DefaultTopK int     `yaml:"default_top_k" default:"5"`
	} `yaml:"matcher"`

	Dispatch struct {
		MailAPIURL  string        `yaml:"mail_api_url"`
		MailAPIKey  string        `yaml:"mail_api_key"`
		FromAddress string        `yaml:"from_address"`
		SendsPerMin int           `yaml:"sends_per_minute" default:"60"`
		Timeout     time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"dispatch"`

	Cache struct {
		Backend string        `yaml:"backend" default:"memory"` // memory or redis
		TTL     time.Duration `yaml:"ttl" default:"30m"`
	} `yaml:"cache"`

	Redis struct {
		URL     string        `yaml:"url" default:"redis://localhost:6379"`
		DB      int           `yaml:"db" default:"0"`
		Timeout time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
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

	config.LLM.Provider = "claude"
	config.LLM.MaxTokens = 4096
	config.LLM.Temperature = 0.2
	config.LLM.Timeout = 60 * time.Second

	config.Catalog.SkillsDelimiter = ";"

	config.Matcher.MinScore = 40
	config.Matcher.DefaultTopK = 5

	config.Dispatch.SendsPerMin = 60
	config.Dispatch.Timeout = 30 * time.Second

	config.Cache.Backend = "memory"
	config.Cache.TTL = 30 * time.Minute

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
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

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		c.Catalog.Source = source
	}

	if url := os.Getenv("MAIL_API_URL"); url != "" {
		c.Dispatch.MailAPIURL = url
	}

	if key := os.Getenv("MAIL_API_KEY"); key != "" {
		c.Dispatch.MailAPIKey = key
	}

	if from := os.Getenv("MAIL_FROM_ADDRESS"); from != "" {
		c.Dispatch.FromAddress = from
	}

	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		c.Cache.Backend = backend
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Cache.TTL = d
		}
	}

	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Redis.URL = url
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
