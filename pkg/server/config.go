package server

import (
	"net/http"
	"net/url"
	"time"
)

// Config configures the demo server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Title is the page title.
	Title string

	// Live enables the WebSocket event channel. When false the page posts
	// events as forms and reloads.
	Live bool

	// Route paths.
	EventsPath  string // default "/events"
	LivePath    string // default "/live"
	AssetPrefix string // default "/_selectdemo/"

	// Fingerprint links assets by content hash with immutable caching.
	// Disable for development.
	Fingerprint bool

	// SessionCookie is the name of the cookie carrying the session id.
	SessionCookie string

	// SessionIdleTimeout evicts galleries idle for longer.
	SessionIdleTimeout time.Duration

	// CleanupInterval is how often idle sessions are swept.
	CleanupInterval time.Duration

	// SecureCookies sets the Secure flag on the session cookie.
	SecureCookies bool

	// HTTP server timeouts.
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// WebSocket limits.
	WSReadTimeout   time.Duration
	WSWriteTimeout  time.Duration
	MaxMessageBytes int64

	// CheckOrigin validates the WebSocket Origin header.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:               ":8080",
		Live:               true,
		EventsPath:         "/events",
		LivePath:           "/live",
		AssetPrefix:        "/_selectdemo/",
		Fingerprint:        true,
		SessionCookie:      "selectdemo_session",
		SessionIdleTimeout: 30 * time.Minute,
		CleanupInterval:    time.Minute,
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		WSReadTimeout:      2 * time.Minute,
		WSWriteTimeout:     10 * time.Second,
		MaxMessageBytes:    16 * 1024,
		CheckOrigin:        SameOriginCheck,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.EventsPath == "" {
		c.EventsPath = d.EventsPath
	}
	if c.LivePath == "" {
		c.LivePath = d.LivePath
	}
	if c.AssetPrefix == "" {
		c.AssetPrefix = d.AssetPrefix
	}
	if c.SessionCookie == "" {
		c.SessionCookie = d.SessionCookie
	}
	if c.SessionIdleTimeout <= 0 {
		c.SessionIdleTimeout = d.SessionIdleTimeout
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.WSReadTimeout <= 0 {
		c.WSReadTimeout = d.WSReadTimeout
	}
	if c.WSWriteTimeout <= 0 {
		c.WSWriteTimeout = d.WSWriteTimeout
	}
	if c.MaxMessageBytes <= 0 {
		c.MaxMessageBytes = d.MaxMessageBytes
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	return c
}

// SameOriginCheck accepts WebSocket upgrades whose Origin host matches the
// request host, and requests without an Origin header.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
