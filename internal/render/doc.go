// Package render turns a generated transcript into a standalone HTML preview.
//
// The preview is for reading a script before recording: goldmark renders the
// Markdown with GFM extensions and chroma highlighting, then a stylesheet is
// injected as a <style> block.
package render
