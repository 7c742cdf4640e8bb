// Package diagnostic provides structured errors, warnings and infos
// collected while converting a batch of models.
//
// Key capabilities:
//   - Per-source failure records with stable codes (load, index, translate)
//   - Warnings for ancestors and types no produced schema defines
//   - Filtering by source and one-line summaries for CLI output
package diagnostic
