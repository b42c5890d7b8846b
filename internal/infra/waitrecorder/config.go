package waitrecorder

import (
	"os"
)

// Config selects where sampled standby waits are kept for later analysis.
// The default build writes to InfluxDB, the gcloud build streams rows into
// BigQuery. Only the fields of the compiled backend are read. A backend
// whose credentials are missing degrades to the no-op recorder so the board
// keeps serving without history.
type Config struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID       string
	BigQueryDataset         string
	BigQueryTable           string
	BigQueryCredentialsFile string
}

// LoadConfig reads the wait history settings. The bucket and table default
// to wait_times and park_live_board.wait_samples, and the BigQuery project
// falls back to GOOGLE_CLOUD_PROJECT when running on Cloud Run.
func LoadConfig() *Config {
	cfg := &Config{
		Disabled: os.Getenv("WAIT_HISTORY_DISABLED") == "true",

		InfluxDBURL:    getEnvOrDefault("INFLUXDB_URL", "http://localhost:8086"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: getEnvOrDefault("INFLUXDB_BUCKET", "wait_times"),

		BigQueryProjectID:       getEnvOrDefault("BIGQUERY_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT")),
		BigQueryDataset:         getEnvOrDefault("BIGQUERY_DATASET", "park_live_board"),
		BigQueryTable:           getEnvOrDefault("BIGQUERY_TABLE", "wait_samples"),
		BigQueryCredentialsFile: os.Getenv("BIGQUERY_CREDENTIALS_FILE"),
	}

	return cfg
}

// influxReady reports whether the InfluxDB writer has what it needs to
// authenticate.
func (c *Config) influxReady() bool {
	return !c.Disabled && c.InfluxDBToken != "" && c.InfluxDBOrg != ""
}

func (c *Config) bigQueryReady() bool {
	return !c.Disabled && c.BigQueryProjectID != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
