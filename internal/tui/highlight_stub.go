//go:build nosyntaxhighlight

package tui

const syntaxHighlightAvailable = false

func highlightContent(content, path string, p colorPalette) string { return content }
