package configs

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrEmptyEnvironment   = errors.New("environment must not be empty")
	ErrUnsupportedLogger  = errors.New("logger must be one of [zap, zerolog]")
	ErrInvalidBodyLimit   = errors.New("body limit must be positive")
	ErrMissingMetricsAddr = errors.New("metrics address is required when metrics are enabled")
)

type Config struct {
	Environment string        `koanf:"environment"`
	HTTP        HTTPConfig    `koanf:"http"`
	Static      StaticConfig  `koanf:"static"`
	Body        BodyConfig    `koanf:"body"`
	Logger      LoggerConfig  `koanf:"logger"`
	Tracing     TracingConfig `koanf:"tracing"`
	Metrics     MetricsConfig `koanf:"metrics"`
}

type HTTPConfig struct {
	Host         string        `koanf:"host"`
	Port         uint16        `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type StaticConfig struct {
	Dir string `koanf:"dir"`
}

type BodyConfig struct {
	LimitBytes int64 `koanf:"limit_bytes"`
}

type LoggerConfig struct {
	Logger   string `koanf:"logger"`
	Level    string `koanf:"level"`
	Encoding string `koanf:"encoding"`
	FilePath string `koanf:"file_path"`
}

type TracingConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// envKeys maps the process environment onto config keys. APP_ENV is loaded
// in a second pass so it takes precedence over NODE_ENV.
var envKeys = map[string]string{
	"NODE_ENV":           "environment",
	"PORT":               "http.port",
	"HTTP_HOST":          "http.host",
	"HTTP_READ_TIMEOUT":  "http.read_timeout",
	"HTTP_WRITE_TIMEOUT": "http.write_timeout",
	"HTTP_IDLE_TIMEOUT":  "http.idle_timeout",
	"STATIC_DIR":         "static.dir",
	"BODY_LIMIT_BYTES":   "body.limit_bytes",
	"LOG_LOGGER":         "logger.logger",
	"LOG_LEVEL":          "logger.level",
	"LOG_ENCODING":       "logger.encoding",
	"LOG_FILE_PATH":      "logger.file_path",
	"TRACING_ENABLED":    "tracing.enabled",
	"TRACING_ENDPOINT":   "tracing.endpoint",
	"METRICS_ENABLED":    "metrics.enabled",
	"METRICS_ADDR":       "metrics.addr",
}

var overrideEnvKeys = map[string]string{
	"APP_ENV": "environment",
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	for _, keys := range []map[string]string{envKeys, overrideEnvKeys} {
		if err := k.Load(envProvider(keys), nil); err != nil {
			return nil, fmt.Errorf("failed to load environment: %w", err)
		}
	}

	applyDefaults(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Environment == "" {
		return ErrEmptyEnvironment
	}
	if c.Logger.Logger != "zap" && c.Logger.Logger != "zerolog" {
		return fmt.Errorf("%w: got %q", ErrUnsupportedLogger, c.Logger.Logger)
	}
	if c.Body.LimitBytes <= 0 {
		return ErrInvalidBodyLimit
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return ErrMissingMetricsAddr
	}
	return nil
}

// Addr is the listen address of the public HTTP server.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// envProvider only picks up the variables named in keys, and skips the
// ones that are set but empty so defaults still apply to them.
func envProvider(keys map[string]string) *env.Env {
	return env.ProviderWithValue("", ".", func(name, value string) (string, any) {
		key, ok := keys[name]
		if !ok || value == "" {
			return "", nil
		}
		return key, value
	})
}

func applyDefaults(k *koanf.Koanf) {
	setDefault(k, "environment", "development")

	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 3000)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.idle_timeout", time.Minute)

	setDefault(k, "static.dir", "public")
	setDefault(k, "body.limit_bytes", 100*1024)

	// Logger defaults
	setDefault(k, "logger.logger", "zap")
	setDefault(k, "logger.level", "info")
	setDefault(k, "logger.encoding", "json")

	setDefault(k, "tracing.enabled", false)
	setDefault(k, "tracing.endpoint", "http://localhost:4318/v1/traces")

	setDefault(k, "metrics.enabled", false)
	setDefault(k, "metrics.addr", ":9100")
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value any) {
	if !k.Exists(key) {
		_ = k.Set(key, value)
	}
}
