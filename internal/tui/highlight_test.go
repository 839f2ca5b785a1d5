//go:build !nosyntaxhighlight

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go", lexerForPath("cmd/main.go", "").Config().Name)
	assert.Equal(t, "Rust", lexerForPath("src/main.rs", "").Config().Name)
	assert.NotNil(t, lexerForPath("", ""))
	assert.NotNil(t, lexerForPath("notes.unknown-extension", "plain words"))
}

func TestHighlightContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, highlightContent("", "main.go", lightPalette))

	src := "package main\n\nfunc main() {}\n"
	got := highlightContent(src, "main.go", darkPalette)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "package")
	assert.Contains(t, got, "main")
}

func TestStyleForPalette(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "github", styleForPalette(lightPalette).Name)
	assert.Equal(t, "github-dark", styleForPalette(darkPalette).Name)
	assert.NotNil(t, styleForPalette(colorPalette{ChromaStyle: "no-such-style"}))
}
