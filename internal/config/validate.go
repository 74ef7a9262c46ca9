package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	blobDrivers = []string{"fs", "s3", "memory"}
	logFormats  = []string{"json", "text"}
	locales     = []string{"cs", "en"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if !strings.HasPrefix(c.Auth.AdminPasswordHash, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}
	if c.Auth.LoginRatePerMinute <= 0 {
		return fmt.Errorf("auth.login_rate_per_minute must be > 0 (got %d)", c.Auth.LoginRatePerMinute)
	}

	if c.Database.SlowQueryThreshold < 0 {
		return fmt.Errorf("database.slow_query_threshold must be >= 0 (got %v)", c.Database.SlowQueryThreshold)
	}

	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if err := c.Blob.validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}

	if c.Import.MaxFileBytes <= 0 {
		return fmt.Errorf("import.max_file_bytes must be > 0 (got %d)", c.Import.MaxFileBytes)
	}

	if !slices.Contains(locales, c.Web.DefaultLocale) {
		return fmt.Errorf("web.default_locale must be one of %v (got %q)", locales, c.Web.DefaultLocale)
	}

	return nil
}

func (b *BlobConfig) validate() error {
	if !slices.Contains(blobDrivers, b.Driver) {
		return fmt.Errorf("driver must be one of %v (got %q)", blobDrivers, b.Driver)
	}
	if b.Driver == "s3" && b.S3Bucket == "" {
		return fmt.Errorf("s3_bucket is required for the s3 driver")
	}
	if b.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", b.MaxUploadBytes)
	}
	return nil
}
