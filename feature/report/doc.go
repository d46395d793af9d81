// Package report implements report generation over the order snapshot and
// artifact storage on the file share.
//
// Generate reads every order, materializes a line-oriented CSV artifact
// (header block, one row per order, summary with count and total revenue) and
// writes it in one shot under "{type}_Report_{timestamp}_{suffix}.csv".
// Download returns a stored artifact verbatim. A missing artifact and a
// failed read are indistinguishable to callers.
//
// # HTTP Endpoints
//
//   - POST /reports/generate : Build and persist a report.
//   - GET /reports/download/:name : Retrieve a report as CSV text.
package report
