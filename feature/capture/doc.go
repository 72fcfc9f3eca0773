// Package capture stores the raw daily captures the replay driver reads.
//
// Every character has two kinds of documents per day, both kept verbatim as
// returned by the game API:
//
//	captures/<character>/equipment/<YYYY-MM-DD>.json
//	captures/<character>/ring-exchange/<YYYY-MM-DD>.json
//
// Store implements reconcile.Source and reconcile.DateLister on top of the
// object storage client. A missing object means "no data for that day".
//
// # HTTP Endpoints
//
//   - PUT /captures/:character/:kind/:date : upload one document (validated first).
//   - DELETE /captures/:character/:kind/:date : remove one document.
//   - GET /captures/:character : list capture days.
//   - GET /captures/:character/gaps?from&to : days without an equipment capture.
//   - DELETE /captures/:character?confirm=true : remove every capture of a character.
//
// Any write drops the cached replay seeds of the character.
package capture
