package gotld

import "time"

// Config mirrors the options for JSON config files used by cmd/gotld.
type Config struct {
	SourceURL        string `json:"source_url"`
	SourceFile       string `json:"source_file"`
	AllowPrivateTLDs bool   `json:"allow_private_tlds"`
	Timeout          int    `json:"timeout"`          // fetch timeout in seconds
	CacheExpireSec   int64  `json:"cache_expire_sec"` // result cache TTL
	LogLevel         string `json:"log_level"`
}

// Options converts the config to manager options, leaving defaults in
// place for zero-valued fields.
func (c Config) Options() []Option {
	var opts []Option
	if c.SourceURL != "" {
		opts = append(opts, WithSourceURL(c.SourceURL))
	}
	if c.SourceFile != "" {
		opts = append(opts, WithSourceFile(c.SourceFile))
	}
	if c.AllowPrivateTLDs {
		opts = append(opts, WithAllowPrivateTLDs(true))
	}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(time.Duration(c.Timeout)*time.Second))
	}
	if c.CacheExpireSec > 0 {
		opts = append(opts, WithCacheExpireSec(c.CacheExpireSec))
	}
	return opts
}
