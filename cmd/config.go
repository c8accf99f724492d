package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/domain/model/schema"
)

const (
	PolicyAbort = "abort"
	PolicyWarn  = "warn"

	DefaultReloadSchedule = "@every 30s"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AppEnv names the deployment environment; "production" turns
	// validation off unless Validate says otherwise.
	AppEnv           string
	Validate         string
	UseDefaults      string
	ValidationPolicy string

	ModelsFile           string
	ModelsReloadSchedule string
	AuditSchedule        string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ReloadSchedule returns the catalog reload schedule, falling back to DefaultReloadSchedule.
func (c Config) ReloadSchedule() string {
	if s := strings.TrimSpace(c.ModelsReloadSchedule); s != "" {
		return s
	}
	return DefaultReloadSchedule
}

// AugmentOptions translates the validation settings. Empty settings stay
// unspecified so the augmenter falls back to its own defaults.
func (c Config) AugmentOptions(logger *slog.Logger) (augment.Options, error) {
	opts := augment.Options{Environment: c.AppEnv}

	validate, err := optionalBool("VALIDATE", c.Validate)
	if err != nil {
		return augment.Options{}, err
	}
	opts.Validate = validate

	useDefaults, err := optionalBool("USE_DEFAULTS", c.UseDefaults)
	if err != nil {
		return augment.Options{}, err
	}
	opts.UseDefaults = useDefaults

	switch strings.ToLower(strings.TrimSpace(c.ValidationPolicy)) {
	case "", PolicyAbort:
		opts.Policy = schema.AbortPolicy{}
	case PolicyWarn:
		opts.Policy = schema.NewWarnPolicy(logger)
	default:
		return augment.Options{}, fmt.Errorf("VALIDATION_POLICY must be %q or %q, got %q",
			PolicyAbort, PolicyWarn, c.ValidationPolicy)
	}

	return opts, nil
}

func optionalBool(name, raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return augment.Bool(b), nil
}
