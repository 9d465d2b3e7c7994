// Package analysis exposes the matching-and-classification pipeline over
// HTTP.
//
// Every endpoint runs against an immutable snapshot of the session datasets:
// match, classify at the requested tolerance, then aggregate. Re-running at
// a different tolerance is cheap because classification never re-runs the
// matcher's join.
//
// # HTTP Endpoints
//
//   - GET /analysis            : classified results with unmatched lists and
//     match statistics (supports status/vendor filters and sorting)
//   - GET /analysis/summary    : per-status and global rollups
//   - GET /analysis/vendors    : per-vendor rollups
//   - GET /analysis/validation : match-coverage scoring and data-quality warnings
//   - GET /analysis/export     : flat CSV of every classified result
//
// All analysis endpoints accept ?tolerance=10|20|30|40|50; absent, the
// session's current tolerance applies.
package analysis
