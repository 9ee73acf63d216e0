package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from the environment with
// optional .env overrides for local development.
type Config struct {
	Port                    string
	Env                     string
	PostgresConnStr         string
	JWTSecret               string
	FirebaseCredentialsPath string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPublicURL string
	MinioUseSSL    bool

	LogFile string
}

// Load reads configuration from the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("JWT_SECRET", "supersecretjwtkey")
	viper.SetDefault("MINIO_BUCKET", "socialite-media")
	viper.SetDefault("MINIO_USE_SSL", false)
	viper.SetDefault("LOG_FILE", "logs/app.log")

	return &Config{
		Port:                    viper.GetString("PORT"),
		Env:                     viper.GetString("ENV"),
		PostgresConnStr:         viper.GetString("POSTGRES_CONN_STR"),
		JWTSecret:               viper.GetString("JWT_SECRET"),
		FirebaseCredentialsPath: viper.GetString("FIREBASE_CREDENTIALS_PATH"),
		MinioEndpoint:           viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:          viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:          viper.GetString("MINIO_SECRET_KEY"),
		MinioBucket:             viper.GetString("MINIO_BUCKET"),
		MinioPublicURL:          viper.GetString("MINIO_PUBLIC_URL"),
		MinioUseSSL:             viper.GetBool("MINIO_USE_SSL"),
		LogFile:                 viper.GetString("LOG_FILE"),
	}
}
