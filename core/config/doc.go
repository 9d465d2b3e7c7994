// Package config provides configuration management for the analyzer.
//
// It uses Viper to load configuration from environment variables and an
// optional .env file (via godotenv), with defaults declared as struct tags on
// the partial configuration types.
//
// # Configuration structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, admin key, default tolerance
//   - Storage: S3/MinIO endpoint and bucket for dataset ingestion
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
