// Package export renders reconciliation reports at the presentation
// boundary: flag impacts become narrative text and the variance/flag
// sequences become CSV for download or spreadsheet review.
package export
