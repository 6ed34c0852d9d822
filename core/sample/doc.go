// Package sample generates deterministic synthetic datasets for demos and
// tests: a payroll register plus the GL postings that should accompany it,
// optionally seeded with the discrepancies the reconciliation checks exist
// to catch.
package sample
