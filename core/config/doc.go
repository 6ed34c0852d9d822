// Package config provides configuration management for the reconciliation
// service.
//
// It uses Viper to load settings from environment variables, with defaults
// declared as struct tags and an optional .env file loaded through godotenv.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
