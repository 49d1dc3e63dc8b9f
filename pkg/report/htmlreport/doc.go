// Package htmlreport renders comparison results into a single self-contained
// HTML document: inline styles and scripts, no external fetches.
//
// Differences are grouped into collapsible sections by change kind, each item
// keeping the same index as the console output. A client-side theme switcher
// offers the Light, Night, and HighContrast themes. Given the same result and
// options the rendered bytes are identical across runs; the generation
// timestamp, when provided, is confined to a single paragraph line.
package htmlreport
