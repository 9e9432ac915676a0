// Package hunt provides a local, CLI-based job application tracker.
// It ingests job postings from scraped pages, job-alert emails, and pasted
// text, extracts structured fields from the noisy input, deduplicates
// candidates against the stored corpus, and tracks application state.
//
// This package contains domain types, interfaces, and the pure
// extraction/deduplication core following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, rod/, imap/).
package hunt
