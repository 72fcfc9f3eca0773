// Package config provides configuration management for the gear tracker.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file through godotenv. Defaults come from the `default` struct tags of each
// section and are registered by reflection, so every key can be overridden by
// its upper-cased, underscore separated environment name.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and upload body limit
//   - Storage: S3/MinIO credentials and the capture bucket
//   - Database: change-history database (mysql or sqlite)
//   - Log: logging level and format
//   - Replay: history start, seed cache TTL and excluded buckets
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Replay.HistoryStart)
package config
