package git

import (
	"path"
	"strings"
)

const (
	recordDelimiter = "|"
	recordFields    = 4

	// logFormat must stay aligned with parseCommitRecords: hash, author,
	// date, subject.
	logFormat = "%H" + recordDelimiter + "%an" + recordDelimiter + "%ad" + recordDelimiter + "%s"
)

// parseCommitRecords decodes one record per non-blank line. Missing trailing
// fields decode to "", fields past the fourth are dropped, and no line ever
// fails the whole result.
func parseCommitRecords(out string) []Commit {
	var commits []Commit
	for rawLine := range strings.SplitSeq(out, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		commits = append(commits, parseCommitRecord(line))
	}
	return commits
}

func parseCommitRecord(line string) Commit {
	var fields [recordFields]string
	parts := strings.SplitN(line, recordDelimiter, recordFields+1)
	for i := 0; i < len(parts) && i < recordFields; i++ {
		fields[i] = strings.TrimSpace(parts[i])
	}
	return Commit{
		Hash:    fields[0],
		Author:  fields[1],
		Date:    fields[2],
		Message: fields[3],
	}
}

// parseLines splits command output into trimmed, non-blank lines.
func parseLines(out string) []string {
	var lines []string
	for rawLine := range strings.SplitSeq(out, "\n") {
		line := strings.TrimSpace(strings.TrimRight(rawLine, "\r"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

var (
	buildOutputDirs = map[string]struct{}{"target": {}}
	metadataDirs    = map[string]struct{}{".git": {}}
	objectFileExts  = map[string]struct{}{".o": {}, ".obj": {}}
)

// filterChangedFiles drops generated artifacts and repository metadata from a
// commit's changed-file list.
func filterChangedFiles(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || isNoisePath(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isNoisePath(p string) bool {
	p = strings.ReplaceAll(p, "\\", "/")
	if _, ok := objectFileExts[strings.ToLower(path.Ext(p))]; ok {
		return true
	}
	segments := strings.Split(p, "/")
	for _, dir := range segments[:len(segments)-1] {
		if _, ok := buildOutputDirs[dir]; ok {
			return true
		}
		if _, ok := metadataDirs[dir]; ok {
			return true
		}
	}
	return false
}

// truncateLines keeps at most max lines of content.
func truncateLines(content string, max int) string {
	if max <= 0 {
		return content
	}
	seen := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		seen++
		if seen == max {
			return content[:i]
		}
	}
	return content
}
