package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// the check (development only).
	ApiKey string `mapstructure:"api_key" default:""`
	// AdminKey is the additional key required for PFEP master-data
	// management (upload, replace, lock). Empty disables the check.
	AdminKey string `mapstructure:"admin_key" default:""`
	// DefaultTolerance is the tolerance band applied when a request does not
	// select one. Must be one of 10, 20, 30, 40, 50.
	DefaultTolerance float64 `mapstructure:"default_tolerance" default:"30"`
}
