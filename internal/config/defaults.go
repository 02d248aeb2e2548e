package config

// ConfigFileName is the per-project config file, looked up in the
// project directory.
const ConfigFileName = ".scraperctl.yaml"

const (
	DefaultContainerName = "sities-scraper"
	DefaultRuntime       = RuntimeAuto
	DefaultImageMode     = ImageBuild

	// DefaultSettle preserves the historical fixed-sleep readiness wait
	// as the minimum floor before health polling starts.
	DefaultSettle       = "10s"
	DefaultReadyTimeout = "90s"
	DefaultPollInterval = "3s"

	DefaultLogTail = 50
)

// DefaultRequiredFiles are the secret/config bundles the scraping
// workload cannot start without.
var DefaultRequiredFiles = []string{
	".env",
	"data/credentials.txt",
	"data/cookies_foursquare.json",
}

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		ContainerName: DefaultContainerName,
		Runtime:       DefaultRuntime,
		Image: ImageConfig{
			Mode: DefaultImageMode,
		},
		Readiness: ReadinessConfig{
			Settle:       DefaultSettle,
			Timeout:      DefaultReadyTimeout,
			PollInterval: DefaultPollInterval,
		},
		LogTail:       DefaultLogTail,
		RequiredFiles: append([]string(nil), DefaultRequiredFiles...),
	}
}
