// Package export serializes audit collections into downloadable report
// files.
//
// The exporters are pure serializers: they depend only on the PageAudit
// shape and accept any pre-filtered subset, deriving nothing from evaluator
// or aggregation internals beyond what the data itself carries. Each format
// produces a File with content, a date-stamped filename, and the MIME type a
// delivery layer needs to serve it.
package export
