// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler:
//
//   - Auth: API key validation to protect endpoints.
//   - RayID: a unique request ID (RayID) for every incoming request,
//     injected into the context and response headers for tracing.
//
// These are registered globally in the server setup.
package middleware
