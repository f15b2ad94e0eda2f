package v1

import "time"

// Receipt summarizes one pipeline run.
type Receipt struct {
	Timestamp  string         `json:"ts_utc"`
	Conclusion string         `json:"conclusion"`
	Tension    string         `json:"tension"`
	Notify     bool           `json:"notify"`
	Channel    string         `json:"channel"`
	Counts     map[string]int `json:"counts"`
}

// VibePoint is one point of the tension time series.
type VibePoint struct {
	Timestamp string `json:"ts_utc"`
	Level     string `json:"level"`
	Notify    bool   `json:"notify"`
}

// Snapshot represents an archived export commit.
type Snapshot struct {
	Hash      string    `json:"hash"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
