package resource

import (
	"errors"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML. A missing default file is tolerated so that
// packages importing resource can be tested without a configs directory.
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = defaultPropertiesPath
		if _, err := os.Stat(value); errors.Is(err, os.ErrNotExist) {
			return
		}
	}
	if err := Init(value); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init reads the YAML file at filepath, resolves ${ENV:default} placeholders and merges the
// result into the process-wide properties.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", reader.AllSettings(), resolved)

	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// Set overrides a single property. Intended for tests and command line overrides.
func Set(key string, value any) {
	properties.Set(key, value)
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${ENV:default} value with the environment value or its default.
// Plain strings are returned unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or not positive
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset
func GetIntOrDefault(key string, defaultValue int) int {
	if !properties.IsSet(key) {
		return defaultValue
	}
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
