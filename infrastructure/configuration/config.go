package configuration

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"popular-videos/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App     App     `json:"app"`
	Logger  Logger  `json:"logger"`
	YouTube YouTube `json:"youtube"`
}

type App struct {
	Port         int      `json:"port"`
	TLSEnabled   bool     `json:"tlsEnabled"`
	TLSCertFile  string   `json:"tlsCertFile"`
	TLSKeyFile   string   `json:"tlsKeyFile"`
	AllowOrigins []string `json:"allowOrigins"`
}

type Logger struct {
	Format     string `json:"format"`
	Level      string `json:"level"`
	ToFile     bool   `json:"toFile"`
	Dir        string `json:"dir"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays"`
}

type YouTube struct {
	APIKey           string `json:"apiKey"`
	BaseURL          string `json:"baseURL"`
	WindowDays       int    `json:"windowDays"`
	SearchMaxResults int64  `json:"searchMaxResults"`
	TopN             int    `json:"topN"`
}

const (
	DefaultPort             = 10001
	DefaultWindowDays       = 7
	DefaultSearchMaxResults = 50
	DefaultTopN             = 20
)

var defaultSearchPaths = []string{".", "../", "../../"}

// LoadConfig reads config.json (or config-<ENV>.json) and applies environment overrides.
func LoadConfig() (*Config, error) {
	return LoadConfigFromPaths(defaultSearchPaths...)
}

// LoadConfigFromPaths is LoadConfig with explicit search directories.
func LoadConfigFromPaths(paths ...string) (*Config, error) {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.GetLogger().WithField("config", name).Warn("Config file not found, using environment and defaults")
		} else {
			return nil, fmt.Errorf("read config %s: %w", name, err)
		}
	} else {
		logger.GetLogger().WithField("config", v.ConfigFileUsed()).Info("Config set up successfully")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	initApp(&c)
	initLogger(&c)
	initYouTube(&c)
	return &c, nil
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(c *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.App.TLSEnabled = enabled
		}
	}
	c.App.TLSCertFile = getConfigValue(c.App.TLSCertFile, "TLS_CERT_FILE", "")
	c.App.TLSKeyFile = getConfigValue(c.App.TLSKeyFile, "TLS_KEY_FILE", "")
	if len(c.App.AllowOrigins) == 0 {
		c.App.AllowOrigins = []string{"http://localhost:3000", fmt.Sprintf("http://localhost:%d", c.App.Port)}
	}
}

func initLogger(c *Config) {
	c.Logger.Format = getConfigValue(c.Logger.Format, "LOG_FORMAT", "json")
	c.Logger.Level = getConfigValue(c.Logger.Level, "LOG_LEVEL", "debug")
	if v := os.Getenv("LOG_TO_FILE"); v != "" {
		if toFile, err := strconv.ParseBool(v); err == nil {
			c.Logger.ToFile = toFile
		}
	}
}

// Validate checks ranges once at startup. A missing API key is not an error here:
// the service still starts and reports the configuration error per request.
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", c.App.Port)
	}
	if c.App.TLSEnabled && (c.App.TLSCertFile == "" || c.App.TLSKeyFile == "") {
		return errors.New("app.tlsEnabled requires tlsCertFile and tlsKeyFile")
	}
	if c.YouTube.WindowDays <= 0 {
		return fmt.Errorf("youtube.windowDays must be positive: %d", c.YouTube.WindowDays)
	}
	if c.YouTube.SearchMaxResults < 1 || c.YouTube.SearchMaxResults > 50 {
		return fmt.Errorf("youtube.searchMaxResults must be within 1..50: %d", c.YouTube.SearchMaxResults)
	}
	if c.YouTube.TopN <= 0 {
		return fmt.Errorf("youtube.topN must be positive: %d", c.YouTube.TopN)
	}
	return nil
}

// LoggerOptions converts the logger section for logger.Configure.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Format:     c.Logger.Format,
		Level:      c.Logger.Level,
		ToFile:     c.Logger.ToFile,
		Dir:        c.Logger.Dir,
		MaxSizeMB:  c.Logger.MaxSizeMB,
		MaxBackups: c.Logger.MaxBackups,
		MaxAgeDays: c.Logger.MaxAgeDays,
	}
}
