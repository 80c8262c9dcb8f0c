// Package pagelens fetches web pages under adversarial conditions and
// extracts normalized structured data from them: page metadata, the main
// article text, headings, images, links, and a link-to-description catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package pagelens
