// Package config loads service configuration from the environment and form
// field bindings from YAML.
//
// Environment values are read into tagged structs with caarlos0/env. A .env
// file in the working directory is loaded once before the first parse when it
// exists; variables already present in the environment win over the file.
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Field bindings describe which mask and which rules apply to each form
// field. Rules may be written as a list or as the comma separated string
// used in page markup:
//
//	fields:
//	  - name: cpf
//	    mask: cpf
//	    rules: obrigatorio, cpf
//	  - name: email
//	    rules: [obrigatorio, email]
//
// Rule names are resolved while parsing, so an unknown rule is reported with
// the file rather than surfacing as a passing check later.
package config
