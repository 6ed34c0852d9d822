// Package recon exposes the payroll-to-GL reconciliation engine over HTTP.
//
// A client uploads a payroll register and the matching general ledger
// postings as CSV files and receives the full reconciliation report:
// variances, review flags and the summary with the overall PASSED/FAILED
// status.
//
// # HTTP Endpoints
//
//   - POST /recon/reconcile : Runs a reconciliation over the uploaded
//     multipart parts "payroll" and "gl". Returns the JSON report by
//     default; with ?format=csv the variance list is streamed as CSV
//     (?sheet=flags selects the flag list instead).
//
// Uploads with a missing part are rejected with 400. Uploads whose CSV
// content is missing a required column or carries a non-numeric amount
// are rejected with 422, naming the offending table and column.
package recon
