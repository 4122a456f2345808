// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Files: input CSV/workbook paths, sheet name, output locations
//   - Log: logging level and format
//   - Archive: run-history database connection details
//   - Storage: S3/MinIO credentials and report bucket settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Files.Sheet)
package config
