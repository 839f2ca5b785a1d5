package git

import (
	"cmp"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// minGitVersion is the oldest git the CLI backend works with: it relies on
// "--end-of-options" and "git branch --show-current".
var minGitVersion = gitVersion{major: 2, minor: 24}

type gitVersion struct {
	major, minor, patch int
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) compare(other gitVersion) int {
	return cmp.Or(
		cmp.Compare(v.major, other.major),
		cmp.Compare(v.minor, other.minor),
		cmp.Compare(v.patch, other.patch),
	)
}

// Matches "2.44.0", "2.39.3 (Apple Git-146)", "2.39.3.windows.1" and "2.42".
var gitVersionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

func parseGitVersionOutput(out string) (gitVersion, bool) {
	m := gitVersionRe.FindStringSubmatch(out)
	if m == nil {
		return gitVersion{}, false
	}
	var v gitVersion
	var err error
	if v.major, err = strconv.Atoi(m[1]); err != nil {
		return gitVersion{}, false
	}
	if v.minor, err = strconv.Atoi(m[2]); err != nil {
		return gitVersion{}, false
	}
	if m[3] != "" {
		v.patch, _ = strconv.Atoi(m[3])
	}
	return v, true
}

func validateGitVersionOutput(out string) error {
	got, ok := parseGitVersionOutput(out)
	if !ok {
		return fmt.Errorf("unable to parse git version output: %q", strings.TrimSpace(out))
	}
	return checkGitVersion(got)
}

func checkGitVersion(got gitVersion) error {
	if got.compare(minGitVersion) < 0 {
		return fmt.Errorf("git %s is too old; gitnav requires git >= %s", got, minGitVersion)
	}
	return nil
}

// probeGitVersion runs "git --version" once per process.
var probeGitVersion = sync.OnceValues(func() (string, error) {
	outBytes, err := exec.Command(defaultGitExecutable, "--version").CombinedOutput()
	out := strings.TrimSpace(string(outBytes))
	if err != nil {
		if out != "" {
			return out, fmt.Errorf("git --version: %v: %s", err, out)
		}
		return out, fmt.Errorf("git --version: %w", err)
	}
	return out, nil
})

func MinGitVersion() string {
	return minGitVersion.String()
}

// GitVersion returns the raw "git --version" output.
func GitVersion() (string, error) {
	return probeGitVersion()
}

func ensureMinGitVersion() error {
	out, err := probeGitVersion()
	if err != nil {
		return err
	}
	return validateGitVersionOutput(out)
}
