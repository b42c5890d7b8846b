package waitrecorder

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "park-prod")
	t.Setenv("INFLUXDB_TOKEN", "token")
	t.Setenv("INFLUXDB_ORG", "parks")

	cfg := LoadConfig()

	if cfg.InfluxDBBucket != "wait_times" {
		t.Errorf("InfluxDBBucket = %q, want %q", cfg.InfluxDBBucket, "wait_times")
	}
	if cfg.BigQueryProjectID != "park-prod" {
		t.Errorf("BigQueryProjectID = %q, want %q", cfg.BigQueryProjectID, "park-prod")
	}
	if cfg.BigQueryDataset != "park_live_board" || cfg.BigQueryTable != "wait_samples" {
		t.Errorf("BigQuery table = %s.%s, want park_live_board.wait_samples", cfg.BigQueryDataset, cfg.BigQueryTable)
	}
	if !cfg.influxReady() {
		t.Error("influxReady() = false, want true with token and org set")
	}
}

func TestConfig_Ready(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantInflux   bool
		wantBigQuery bool
	}{
		{
			name:         "fully configured",
			cfg:          Config{InfluxDBToken: "t", InfluxDBOrg: "o", BigQueryProjectID: "p"},
			wantInflux:   true,
			wantBigQuery: true,
		},
		{
			name:         "disabled wins",
			cfg:          Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o", BigQueryProjectID: "p"},
			wantInflux:   false,
			wantBigQuery: false,
		},
		{
			name:         "missing influx org",
			cfg:          Config{InfluxDBToken: "t"},
			wantInflux:   false,
			wantBigQuery: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.influxReady(); got != tt.wantInflux {
				t.Errorf("influxReady() = %v, want %v", got, tt.wantInflux)
			}
			if got := tt.cfg.bigQueryReady(); got != tt.wantBigQuery {
				t.Errorf("bigQueryReady() = %v, want %v", got, tt.wantBigQuery)
			}
		})
	}
}
