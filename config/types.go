// Package config loads the metroroute application configuration from a
// YAML file, applies environment overrides and validates the result.
package config

// Network sources.
const (
	SourceSample   = "sample"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceGTFS     = "gtfs"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port             int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins   []string `yaml:"allowedOrigins"`
	RequestTimeoutMS int      `yaml:"requestTimeoutMS" validate:"gte=0"`
}

// RoutingConfig contains search configuration
type RoutingConfig struct {
	LinePenalty      int64 `yaml:"linePenalty" validate:"gte=0"`
	MaxFrontier      int   `yaml:"maxFrontier" validate:"gte=0"`
	MaxTransferDepth int   `yaml:"maxTransferDepth" validate:"gte=0"`
}

// NetworkConfig selects where the network comes from
type NetworkConfig struct {
	Source          string `yaml:"source" validate:"required,oneof=sample file sqlite postgres gtfs"`
	Path            string `yaml:"path" validate:"required_if=Source file,required_if=Source sqlite,required_if=Source gtfs"`
	DatabaseURL     string `yaml:"databaseURL" validate:"required_if=Source postgres"`
	TransferMinutes int64  `yaml:"transferMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Routing RoutingConfig `yaml:"routing"`
	Network NetworkConfig `yaml:"network"`
}
