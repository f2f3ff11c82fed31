package config

import (
	"os"
	"strconv"
)

// applyEnv overrides file values with FETE_* environment variables
func (c *Config) applyEnv() {
	c.DataDir = getString("FETE_DATA_DIR", c.DataDir)
	c.Backend = getString("FETE_BACKEND", c.Backend)
	c.Format = getString("FETE_FORMAT", c.Format)
	c.StrictReferences = getBool("FETE_STRICT_REFERENCES", c.StrictReferences)
	c.PersistRetries = getInt("FETE_PERSIST_RETRIES", c.PersistRetries)
	c.Postgres.DSN = getString("FETE_POSTGRES_DSN", c.Postgres.DSN)
	c.Redis.URL = getString("FETE_REDIS_URL", c.Redis.URL)
	c.S3.Bucket = getString("FETE_S3_BUCKET", c.S3.Bucket)
	c.S3.Region = getString("FETE_S3_REGION", c.S3.Region)
	c.S3.Endpoint = getString("FETE_S3_ENDPOINT", c.S3.Endpoint)
	c.S3.PathStyle = getBool("FETE_S3_PATH_STYLE", c.S3.PathStyle)
	c.Log.Level = getString("FETE_LOG_LEVEL", c.Log.Level)
	c.Log.Encoding = getString("FETE_LOG_ENCODING", c.Log.Encoding)
	c.Log.File = getString("FETE_LOG_FILE", c.Log.File)
	c.HTTP.Addr = getString("FETE_HTTP_ADDR", c.HTTP.Addr)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
