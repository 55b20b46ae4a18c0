package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment before it is read.
// Variables already present in the environment win over the file.
var dotEnvFile = ".env"

// EnvConfig lists the environment variables understood by the server.
type EnvConfig struct {
	Port              string        `env:"PORT"`
	DatabaseURI       string        `env:"DB_URI"`
	DatabaseUser      string        `env:"DB_USER"`
	DatabasePassword  string        `env:"DB_PASS"`
	DatabaseHost      string        `env:"DB_HOST"`
	DatabaseName      string        `env:"DB_NAME"`
	SecretKey         string        `env:"ACCESS_TOKEN_SECRET"`
	TokenValidity     time.Duration `env:"TOKEN_VALIDITY"`
	S3AccessKey       string        `env:"S3_ACCESS_KEY"`
	S3SecretKey       string        `env:"S3_SECRET_KEY"`
	S3CredentialsFile string        `env:"STORAGE_CREDENTIALS_FILE"`
	S3Bucket          string        `env:"S3_BUCKET"`
	S3Region          string        `env:"S3_REGION"`
	S3BaseEndpoint    string        `env:"S3_ENDPOINT"`
	S3PublicURL       string        `env:"S3_PUBLIC_URL"`
	AllowedOrigins    []string      `env:"CORS_ORIGINS" env-separator:","`
	LogLevel          string        `env:"LOG_LEVEL"`
}

// parseEnv overlays values from the environment. A missing .env file is not
// an error; a malformed one, or an unparsable variable, panics.
func parseEnv(config *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		panic(err)
	}

	if e.Port != "" {
		config.EndpointAddrHTTP = ":" + e.Port
	}
	setString(&config.DatabaseURI, e.DatabaseURI)
	setString(&config.DatabaseUser, e.DatabaseUser)
	setString(&config.DatabasePassword, e.DatabasePassword)
	setString(&config.DatabaseHost, e.DatabaseHost)
	setString(&config.DatabaseName, e.DatabaseName)
	setString(&config.SecretKey, e.SecretKey)
	if e.TokenValidity > 0 {
		config.TokenValidityDuration = e.TokenValidity
	}
	setString(&config.S3AccessKey, e.S3AccessKey)
	setString(&config.S3SecretKey, e.S3SecretKey)
	setString(&config.S3CredentialsFile, e.S3CredentialsFile)
	setString(&config.S3Bucket, e.S3Bucket)
	setString(&config.S3Region, e.S3Region)
	setString(&config.S3BaseEndpoint, e.S3BaseEndpoint)
	setString(&config.S3PublicURL, e.S3PublicURL)
	if len(e.AllowedOrigins) > 0 {
		config.AllowedOrigins = e.AllowedOrigins
	}
	setString(&config.LogLevel, e.LogLevel)
}
