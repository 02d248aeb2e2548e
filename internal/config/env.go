package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "SCRAPERCTL_CONTAINER_NAME",
		apply: func(c *Config, v string) {
			c.ContainerName = v
		},
	},
	{
		envVar: "SCRAPERCTL_RUNTIME",
		apply: func(c *Config, v string) {
			c.Runtime = RuntimeKind(v)
		},
	},
	{
		envVar: "SCRAPERCTL_COMPOSE_FILE",
		apply: func(c *Config, v string) {
			c.ComposeFile = v
		},
	},
	{
		envVar: "SCRAPERCTL_IMAGE_MODE",
		apply: func(c *Config, v string) {
			c.Image.Mode = ImageMode(v)
		},
	},
	{
		envVar: "SCRAPERCTL_SETTLE",
		apply: func(c *Config, v string) {
			c.Readiness.Settle = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
