package configs

import (
	"flag"
	"io"
	"os"
)

// DetermineConfigPath resolves the optional YAML config file from the
// -config flag, then APP_CONFIG, then a list of well-known locations.
// An empty result means the service runs on environment and defaults only.
func DetermineConfigPath(args []string) string {
	var configPath string

	fs := flag.NewFlagSet("devops-sample", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configPath, "config", "", "path to config file")
	_ = fs.Parse(args)

	if configPath == "" {
		configPath = os.Getenv("APP_CONFIG")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/devops-sample/config.yaml",
			"/app/config.yaml", // common in Docker
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
