package audit

import "os"

const (
	disabledEnv = "AUDIT_DISABLED"
	urlEnv      = "INFLUXDB_URL"
	tokenEnv    = "INFLUXDB_TOKEN"
	orgEnv      = "INFLUXDB_ORG"
	bucketEnv   = "INFLUXDB_BUCKET"

	defaultURL    = "http://localhost:8086"
	defaultBucket = "reminder-plans"
)

type Config struct {
	Disabled       bool
	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
}

func LoadConfig() *Config {
	url := os.Getenv(urlEnv)
	if url == "" {
		url = defaultURL
	}

	bucket := os.Getenv(bucketEnv)
	if bucket == "" {
		bucket = defaultBucket
	}

	return &Config{
		Disabled:       os.Getenv(disabledEnv) == "true",
		InfluxDBURL:    url,
		InfluxDBToken:  os.Getenv(tokenEnv),
		InfluxDBOrg:    os.Getenv(orgEnv),
		InfluxDBBucket: bucket,
	}
}
