package config

import (
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"substation-reconciler/core/archive"
	"substation-reconciler/core/logger"
	"substation-reconciler/core/storage"
)

// Files holds the locations of the input sources and the output directory.
type Files struct {
	// Sub1 is the path of the first substation CSV export.
	Sub1 string `mapstructure:"sub1" default:"Datasets/SUB1.csv"`
	// Sub2 is the path of the second substation CSV export.
	Sub2 string `mapstructure:"sub2" default:"Datasets/SUB2.csv"`
	// Workbook is the path of the authoritative xlsx workbook.
	Workbook string `mapstructure:"workbook" default:"Datasets/SUB1-SUB2 115 kV -XcelUpdate.xlsx"`
	// Sheet is the sheet within the workbook holding the component data.
	Sheet string `mapstructure:"sheet" default:"CAISO Update"`
	// OutputDir is the directory the result files are written to.
	OutputDir string `mapstructure:"output_dir" default:"Final"`
	// BaseName is the stem the output file names derive from.
	BaseName string `mapstructure:"base_name" default:"SUB1-SUB2 115kV"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Files holds input and output locations.
	Files Files `mapstructure:"files"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Archive holds configuration for the run-history database.
	Archive archive.Config `mapstructure:"archive"`
	// Storage holds configuration for the report bucket (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. FILES_SUB1 -> files.sub1)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
