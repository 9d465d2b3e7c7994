// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: API key validation protecting all endpoints, plus an admin key
//     check for PFEP master-data management routes.
//   - RayID: Generates a unique request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
//
// These middleware components are registered globally or per-route group in
// the main application setup.
package middleware
