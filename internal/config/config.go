// Package config loads the application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/rskreceipt/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g.
// RSKRECEIPT_RPC_ENDPOINT.
const Prefix = "RSKRECEIPT"

// Config holds the runtime settings.
type Config struct {
	// RPCEndpoint is the JSON-RPC URL of the Rootstock node.
	RPCEndpoint string `envconfig:"RPC_ENDPOINT" default:"https://public-node.testnet.rsk.co" validate:"required,url"`

	// RPCTimeout bounds the single HTTP attempt made per lookup.
	RPCTimeout time.Duration `envconfig:"RPC_TIMEOUT" default:"5s" validate:"gt=0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// OutputDir is where the pdf command writes the document by default.
	OutputDir string `envconfig:"OUTPUT_DIR" default:"." validate:"notblank"`

	// QRSize is the side length of the QR image in pixels.
	QRSize int `envconfig:"QR_SIZE" default:"200" validate:"gt=0"`

	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Telemetry configures the OTLP exporters.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"rskreceipt" validate:"notblank"`

	// Endpoint overrides the OTLP gRPC collector address. Empty uses the
	// exporter defaults and the standard OTEL_EXPORTER_OTLP_* variables.
	Endpoint string `envconfig:"ENDPOINT"`
	Insecure bool   `envconfig:"INSECURE" default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
