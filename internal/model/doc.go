// Package model defines the core data structures used throughout a11yaudit.
//
// This package contains the following main types:
//   - Issue: A single detected accessibility problem with severity and remediation
//   - PageAudit: The complete evaluation result (score + issues) for one page
//   - Severity: The qualitative impact tier of an issue (error > warning > info)
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (rules, aggregate, export, database) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
