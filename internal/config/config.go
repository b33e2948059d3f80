package config

import (
	stderrors "errors"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vango-dev/selectdemo/internal/errors"
)

const (
	// ConfigName is the config file name without extension. Any format
	// viper reads works: selectdemo.yaml, selectdemo.json, selectdemo.toml.
	ConfigName = "selectdemo"

	// EnvPrefix prefixes environment overrides, e.g. SELECTDEMO_SERVER_PORT.
	EnvPrefix = "SELECTDEMO"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"
)

// Config is the complete selectdemo configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Data    DataConfig    `mapstructure:"data"`
	Session SessionConfig `mapstructure:"session"`
	Export  ExportConfig  `mapstructure:"export"`

	path string
}

// ServerConfig configures the demo server.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Title           string        `mapstructure:"title"`
	Live            bool          `mapstructure:"live"`
	Fingerprint     bool          `mapstructure:"fingerprint"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// DataConfig selects the sample data.
type DataConfig struct {
	// File is an HCL file with department and team blocks. Empty uses the
	// built-in lists.
	File string `mapstructure:"file"`
}

// SessionConfig configures browser sessions.
type SessionConfig struct {
	Cookie      string        `mapstructure:"cookie"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// ExportConfig configures static export.
type ExportConfig struct {
	// Target is a directory path or an s3://bucket/prefix URL.
	Target      string   `mapstructure:"target"`
	Fingerprint bool     `mapstructure:"fingerprint"`
	Manifest    bool     `mapstructure:"manifest"`
	S3          S3Config `mapstructure:"s3"`
}

// S3Config configures the S3 client for s3:// targets.
type S3Config struct {
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	PathStyle    bool   `mapstructure:"path_style"`
	CacheControl string `mapstructure:"cache_control"`
}

// Destination is a parsed export target.
type Destination struct {
	Dir    string // set for directory targets
	Bucket string // set for s3 targets
	Prefix string
}

// IsS3 reports whether the destination is a bucket.
func (d Destination) IsS3() bool {
	return d.Bucket != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.title", "Select")
	v.SetDefault("server.live", true)
	v.SetDefault("server.fingerprint", true)
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.file", "")
	v.SetDefault("session.cookie", "selectdemo_session")
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("export.target", "dist")
	v.SetDefault("export.fingerprint", false)
	v.SetDefault("export.manifest", false)
	v.SetDefault("export.s3.region", "us-east-1")
	v.SetDefault("export.s3.endpoint", "")
	v.SetDefault("export.s3.path_style", false)
	v.SetDefault("export.s3.cache_control", "")
}

// New returns the default configuration.
func New() *Config {
	c, err := decode(newViper())
	if err != nil {
		// Defaults are constants; failing to decode them is a bug.
		panic(err)
	}
	return c
}

// Load reads configuration from path, or from selectdemo.{yaml,json,toml}
// in dir when path is empty, then applies SELECTDEMO_* environment
// overrides. A missing file in dir is not an error.
func Load(dir, path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.New(errors.CodeConfigRead).
				WithSuggestion("Check the file syntax, or remove it to use defaults.").
				Wrap(err)
		}
	}

	c, err := decode(v)
	if err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}
	c.path = v.ConfigFileUsed()
	return c, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Path returns the file the config was read from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Validate checks value ranges and formats.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New(errors.CodeInvalidPort).
			WithDetail("server.port is " + strconv.Itoa(c.Server.Port) + "; it must be between 1 and 65535.")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("log.level is " + strconv.Quote(c.Log.Level) + ".").
			WithSuggestion("Use one of debug, info, warn or error.")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("log.format is " + strconv.Quote(c.Log.Format) + ".").
			WithSuggestion("Use text or json.")
	}
	if c.Session.IdleTimeout <= 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("session.idle_timeout must be positive.")
	}
	if c.Session.Cookie == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("session.cookie must not be empty.")
	}
	if _, err := c.Export.Destination(); err != nil {
		return err
	}
	return nil
}

// Address returns host:port for the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Destination parses the export target.
func (e ExportConfig) Destination() (Destination, error) {
	target := strings.TrimSpace(e.Target)
	if target == "" {
		return Destination{}, errors.New(errors.CodeExportTarget).
			WithDetail("export.target is empty.")
	}
	if !strings.HasPrefix(target, "s3://") {
		return Destination{Dir: target}, nil
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return Destination{}, errors.New(errors.CodeExportTarget).
			WithDetail(strconv.Quote(target) + " has no bucket.").
			WithSuggestion("Write s3 targets as s3://bucket/prefix.")
	}
	return Destination{Bucket: u.Host, Prefix: strings.TrimPrefix(u.Path, "/")}, nil
}
