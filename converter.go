package uidoc

// Converter converts HTML to Markdown.
// Snapshots and the docs command use it to render component pages for
// offline reading.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ContentExtractor).
	Convert(html string) (string, error)
}
