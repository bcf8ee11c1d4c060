// Package config loads pdfstructure settings from an optional config file,
// a .env file and PDFSTRUCTURE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
)

// EnvPrefix is prepended to every environment override, e.g.
// PDFSTRUCTURE_BATCH_WORKERS
const EnvPrefix = "PDFSTRUCTURE"

// Config is the application configuration
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Output     OutputConfig     `mapstructure:"output"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Layout     LayoutConfig     `mapstructure:"layout"`
	Log        LogConfig        `mapstructure:"log"`
}

// InputConfig locates the PDFs to process
type InputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// OutputConfig locates the JSON results
type OutputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// BatchConfig controls the worker pool
type BatchConfig struct {
	Workers int `mapstructure:"workers" validate:"gt=0"`
}

// ClassifierConfig holds the block classification thresholds
type ClassifierConfig struct {
	TitleFontSize      float64 `mapstructure:"title_font_size" validate:"gt=0"`
	HeadingFontSize    float64 `mapstructure:"heading_font_size" validate:"gt=0"`
	SubheadingFontSize float64 `mapstructure:"subheading_font_size" validate:"gt=0"`
	TitleMaxLength     int     `mapstructure:"title_max_length" validate:"gt=0"`
	FootnoteMaxLength  int     `mapstructure:"footnote_max_length" validate:"gt=0"`
}

// LayoutConfig tunes how glyphs are grouped into lines and blocks
type LayoutConfig struct {
	YTolerance    float64 `mapstructure:"y_tolerance" validate:"gt=0"`
	WordGapRatio  float64 `mapstructure:"word_gap_ratio" validate:"gt=0"`
	ColumnGap     float64 `mapstructure:"column_gap" validate:"gt=0"`
	BlockGapRatio float64 `mapstructure:"block_gap_ratio" validate:"gt=0"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level      string `mapstructure:"level"`                             // logrus level name
	Format     string `mapstructure:"format" validate:"oneof=text json"` // text or json
	File       string `mapstructure:"file"`                              // optional rotated log file
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
}

// Load reads configuration from configPath (optional), then .env in the
// working directory, then the environment. A missing config file is not an
// error; defaults are used.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			logrus.Warnf("Config file not found at %s, using defaults", configPath)
		} else {
			logrus.Debugf("Using config file: %s", v.ConfigFileUsed())
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.dir", "/app/input")
	v.SetDefault("output.dir", "/app/output")
	v.SetDefault("batch.workers", 4)

	classifier := classify.DefaultConfig()
	v.SetDefault("classifier.title_font_size", classifier.TitleFontSize)
	v.SetDefault("classifier.heading_font_size", classifier.HeadingFontSize)
	v.SetDefault("classifier.subheading_font_size", classifier.SubheadingFontSize)
	v.SetDefault("classifier.title_max_length", classifier.TitleMaxLength)
	v.SetDefault("classifier.footnote_max_length", classifier.FootnoteMaxLength)

	v.SetDefault("layout.y_tolerance", 3.0)
	v.SetDefault("layout.word_gap_ratio", 0.3)
	v.SetDefault("layout.column_gap", 12.0)
	v.SetDefault("layout.block_gap_ratio", 0.7)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use
func (c *Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}
	if err := c.ClassifierConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

var validate = newValidator()

// newValidator reports fields by their config key rather than Go name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})
	return v
}

// fieldError turns "Config.batch.workers" failing "gt" into
// "batch.workers must be gt 0"
func fieldError(fe validator.FieldError) error {
	key := fe.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}

	if fe.Param() == "" {
		return fmt.Errorf("%s is %s", key, fe.Tag())
	}
	return fmt.Errorf("%s must be %s %s, got %v", key, fe.Tag(), fe.Param(), fe.Value())
}

// ClassifierConfig returns the classifier thresholds
func (c *Config) ClassifierConfig() classify.Config {
	return classify.Config{
		TitleFontSize:      c.Classifier.TitleFontSize,
		HeadingFontSize:    c.Classifier.HeadingFontSize,
		SubheadingFontSize: c.Classifier.SubheadingFontSize,
		TitleMaxLength:     c.Classifier.TitleMaxLength,
		FootnoteMaxLength:  c.Classifier.FootnoteMaxLength,
	}
}

// LayoutOptions returns the extraction options for the PDF backend
func (c *Config) LayoutOptions() []pdf.LayoutOption {
	return []pdf.LayoutOption{
		pdf.WithYTolerance(c.Layout.YTolerance),
		pdf.WithWordGapRatio(c.Layout.WordGapRatio),
		pdf.WithColumnGap(c.Layout.ColumnGap),
		pdf.WithBlockGapRatio(c.Layout.BlockGapRatio),
	}
}
