// Package config handles configuration for the server: defaults, a JSON file
// overlay, environment variables (optionally from a .env file) and
// command-line flags, applied in that order.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
)

// Config holds runtime settings for the assignment server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - DatabaseURI: full MongoDB connection string; when empty it is built
//     from DatabaseUser / DatabasePassword / DatabaseHost.
//   - DatabaseName: database holding the assignments and submissions collections.
//   - SecretKey: HMAC secret for signing identity tokens (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: identity token lifetime, also the cookie max age.
//   - S3*: object storage settings; S3CredentialsFile, when set, takes
//     precedence over the static access key pair.
//   - AllowedOrigins: CORS allow-list of frontend origins.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseURI           string
	DatabaseUser          string
	DatabasePassword      string
	DatabaseHost          string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
	S3AccessKey           string
	S3SecretKey           string
	S3CredentialsFile     string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3PublicURL           string
	AllowedOrigins        []string
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.DatabaseHost = "cluster0.mongodb.net"
	c.DatabaseName = "assignmentDB"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = common.DefaultTokenValidity
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "thumbnails"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3PublicURL = "http://127.0.0.1:9000"
	c.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	c.LogLevel = "info"
}

// MongoURI returns DatabaseURI or, if it is empty, an Atlas SRV connection
// string assembled from the user, password and cluster host.
func (c *Config) MongoURI() string {
	if c.DatabaseURI != "" {
		return c.DatabaseURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DatabaseUser), url.QueryEscape(c.DatabasePassword), c.DatabaseHost)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
