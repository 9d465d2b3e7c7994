// Package analysis implements the PFEP matching-and-classification engine.
//
// The engine joins a current-inventory snapshot against the PFEP master
// reference table, computes quantity variance against each part's target,
// classifies every matched part into one of three status buckets under a
// tolerance band, and rolls the results up into status-, vendor- and
// session-level summaries.
//
// # Pipeline
//
// Data flows one way through four pure stages:
//
//  1. Match: join inventory records to reference records by part identifier
//     (optionally part identifier + description), reporting unmatched records
//     on both sides.
//  2. Classify: compute percentage and absolute variance and assign a status
//     given a tolerance.
//  3. Aggregate: per-status counts/values, per-vendor breakdowns, global totals.
//  4. Validate: score match coverage and surface data-quality warnings.
//
// Every stage takes immutable snapshots as arguments and holds no state, so
// re-running the classifier and aggregator at a new tolerance is cheap and
// never touches the matcher's output.
//
// # Tolerance
//
// Tolerance is a percentage band (±N%) around the target quantity. The HTTP
// and CLI surfaces restrict it to {10, 20, 30, 40, 50}; the engine itself
// accepts any non-negative value.
package analysis
