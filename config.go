package main

import (
	"fmt"
)

type AppConfig struct {
	Provider    ProviderConfig
	Concurrency int    `default:"4"`
	UserAgent   string `required:"true"`
	HTTP        HTTPConfig
	Mirror      []MirrorConfig
	Snapshot    []SnapshotConfig
	Notify      NotifyConfig
}

type ProviderConfig struct {
	Name    string `required:"true"`
	Region  string
	Profile string
}

type HTTPConfig struct {
	TimeoutSeconds int `default:"60"`
	MaxAttempts    int `default:"4"`
	// Minimum spacing between consecutive remote downloads, in seconds.
	// 0 leaves requests unpaced until the remote signals a rate limit.
	MinRequestInterval int `default:"2"`
}

type MirrorConfig struct {
	SourceURL         string `required:"true"`
	DestinationBucket string `required:"true"`
	DestinationPrefix string `required:"true"`
	Interval          int    `required:"true"`
	TimestampLocation string `default:"UTC"`
}

type SnapshotConfig struct {
	URL               string `required:"true"`
	DestinationBucket string `required:"true"`
	Key               string `required:"true"`
	Interval          int    `required:"true"`
}

type NotifyConfig struct {
	ID      string
	Region  string
	Profile string
}

func (c AppConfig) ClientFromConfig() (BucketClient, error) {
	switch c.Provider.Name {
	case "aws":
		return NewS3BucketClient(c)
	case "gcp":
		return NewGCSBucketClient()
	default:
		return nil, fmt.Errorf("Unknown cloud provider: %s", c.Provider.Name)
	}
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider.Name))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Region: %s", c.Provider.Region))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Concurrent Transfers: %d", c.Concurrency))
	configStrArr = append(configStrArr, fmt.Sprintf("  - User-Agent: %s", c.UserAgent))

	if c.Notify.ID != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.Notify.ID))
	}

	configStrArr = append(configStrArr, "Indexes To Mirror:")
	for _, mirrorConfig := range c.Mirror {
		configStrArr = append(configStrArr, fmt.Sprintf("%+v", mirrorConfig))
	}

	configStrArr = append(configStrArr, "Endpoints To Snapshot:")
	for _, snapshotConfig := range c.Snapshot {
		configStrArr = append(configStrArr, fmt.Sprintf("%+v", snapshotConfig))
	}

	return configStrArr
}
