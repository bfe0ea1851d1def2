package utils

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Fetch    FetchConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type CORSConfig struct {
	Origins []string
}

// FetchConfig configures the placefetch batch tool only; the API server
// never reads it.
type FetchConfig struct {
	BaseURL    string
	APIKey     string
	Query      string
	Domain     string
	Language   string
	Country    string
	Location   string
	OutputFile string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "laundry-hub")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "laundryhub")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:8000,https://localhost:8000")
	viper.SetDefault("SERP_BASE_URL", "https://serpapi.com/search.json")
	viper.SetDefault("SERP_QUERY", "laundry")
	viper.SetDefault("SERP_DOMAIN", "google.com.np")
	viper.SetDefault("SERP_LANGUAGE", "en")
	viper.SetDefault("SERP_COUNTRY", "np")
	viper.SetDefault("SERP_LOCATION", "Kathmandu, Nepal")
	viper.SetDefault("FETCH_OUTPUT_FILE", "laundries_kathmandu_all.json")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, environment variables still apply
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGO_URI"),
			Name: viper.GetString("DB_NAME"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
		Fetch: FetchConfig{
			BaseURL:    viper.GetString("SERP_BASE_URL"),
			APIKey:     viper.GetString("SERP_API_KEY"),
			Query:      viper.GetString("SERP_QUERY"),
			Domain:     viper.GetString("SERP_DOMAIN"),
			Language:   viper.GetString("SERP_LANGUAGE"),
			Country:    viper.GetString("SERP_COUNTRY"),
			Location:   viper.GetString("SERP_LOCATION"),
			OutputFile: viper.GetString("FETCH_OUTPUT_FILE"),
		},
	}

	return config, nil
}

// splitOrigins parses a comma-separated origin list, dropping blanks and
// trailing slashes
func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimRight(strings.TrimSpace(part), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
