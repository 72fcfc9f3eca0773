// Package integrity provides health checks for the capture store and the
// history database.
//
// # Checks Provided
//
//   - Storage: Checks that the capture bucket exists and lists the characters in it.
//   - Captures: Downloads every capture of a character and reports misnamed,
//     unreadable, undecodable or invalid objects.
//   - Schema: Validates that the history tables match their GORM models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs the storage and schema checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/captures/:character : Scans the captures of one character.
//   - GET /integrity/schema : Runs the schema check.
package integrity
