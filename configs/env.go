package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig holds values that only ever come from the process environment.
type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	CensusAPIKey    string
}

var Env *EnvConfig

func init() {
	Env = LoadEnv()
}

// LoadEnv reads the environment into a fresh EnvConfig.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "census-etl"),
		ContextPath:     getStringOrDefault(v, "CONTEXT_PATH", "/census-etl"),
		CensusAPIKey:    v.GetString("CENSUS_API_KEY"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
