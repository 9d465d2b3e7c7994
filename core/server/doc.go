// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure: the listen port, the API key guarding
// all routes, the admin key guarding PFEP master-data management, and the
// default tolerance band applied when a request does not select one.
//
// It is primarily consumed by core/config, which embeds these settings in the
// application configuration.
package server
