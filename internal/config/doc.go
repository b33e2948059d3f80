// Package config loads selectdemo configuration with viper.
//
// Sources, lowest precedence first: built-in defaults, the config file
// (selectdemo.yaml, selectdemo.json or selectdemo.toml in the working
// directory, or an explicit --config path) and SELECTDEMO_* environment
// variables, where nested keys join with '_':
//
//	server:
//	  port: 9000
//	log:
//	  format: json
//
//	SELECTDEMO_SERVER_PORT=9000 selectdemo serve
//
// Errors are *errors.AppError values with codes from internal/errors.
package config
