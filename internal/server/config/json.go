package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/assignhub/internal/flagx"
	"github.com/dmitrijs2005/assignhub/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Durations
// accept both "1h" style strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseURI           string         `json:"database_uri"`
	DatabaseUser          string         `json:"database_user"`
	DatabasePassword      string         `json:"database_password"`
	DatabaseHost          string         `json:"database_host"`
	DatabaseName          string         `json:"database_name"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	S3AccessKey           string         `json:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key"`
	S3CredentialsFile     string         `json:"s3_credentials_file"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	S3PublicURL           string         `json:"s3_public_url"`
	AllowedOrigins        []string       `json:"allowed_origins"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config.
// Keys that are absent or empty in the file leave the current values alone.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseURI, c.DatabaseURI)
	setString(&config.DatabaseUser, c.DatabaseUser)
	setString(&config.DatabasePassword, c.DatabasePassword)
	setString(&config.DatabaseHost, c.DatabaseHost)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3CredentialsFile, c.S3CredentialsFile)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicURL, c.S3PublicURL)
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
