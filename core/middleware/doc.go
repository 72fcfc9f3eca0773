// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: assigns a unique Request ID (RayID) to every incoming request,
//     stores it in the context and echoes it in the response headers.
//
// Both are registered globally in cmd/start.go; swagger routes bypass auth.
package middleware
