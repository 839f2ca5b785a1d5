//go:build !nosyntaxhighlight

package tui

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

const syntaxHighlightAvailable = true

// highlightContent colours content for a 256-colour terminal, choosing the
// lexer from path. It returns content unchanged when highlighting fails.
func highlightContent(content, path string, p colorPalette) string {
	if content == "" {
		return content
	}
	lexer := lexerForPath(path, content)
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		slog.Debug("tokenise", slog.String("path", path), slog.Any("error", err))
		return content
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	var b strings.Builder
	if err := formatter.Format(&b, styleForPalette(p), iterator); err != nil {
		slog.Debug("format highlight", slog.String("path", path), slog.Any("error", err))
		return content
	}
	return b.String()
}

func styleForPalette(p colorPalette) *chroma.Style {
	if st := chromastyles.Get(p.ChromaStyle); st != nil {
		return st
	}
	return chromastyles.Fallback
}

func lexerForPath(path, content string) chroma.Lexer {
	var lexer chroma.Lexer
	if path != "" {
		lexer = lexers.Match(path)
	}
	if lexer == nil && content != "" {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
