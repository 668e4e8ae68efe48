package transport

import (
	"regexp"
	"strings"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]|\x1b\][^\x07]*\x07|\x1b[()][AB0]`)
	moreRegex = regexp.MustCompile(`(?i)--\s?more\s?--|\(more\)`)

	controlReplacer = strings.NewReplacer(
		"\r", "",
		"\b", "",
		"\x07", "",
		"\x0e", "",
		"\x0f", "",
		"\x1b", "",
	)
)

// scrub removes ANSI escape sequences and stray control characters from
// terminal output.
func scrub(text string) string {
	return controlReplacer.Replace(ansiRegex.ReplaceAllString(text, ""))
}

// isPromptLine reports whether a scrubbed line looks like a device prompt.
// Firewall CLIs end their prompts with '>', '#', or '$', optionally after a
// user@host or (context) prefix.
func isPromptLine(line string) bool {
	line = strings.TrimSpace(scrub(line))
	if line == "" {
		return false
	}
	return strings.HasSuffix(line, ">") ||
		strings.HasSuffix(line, "#") ||
		strings.HasSuffix(line, "$")
}

// hasPrompt reports whether any of the last few lines of the accumulated
// output is a prompt line.
func hasPrompt(output string) bool {
	lines := strings.Split(output, "\n")
	start := len(lines) - 3
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		if isPromptLine(line) {
			return true
		}
	}
	return false
}

// wantsMore reports whether the output tail is a pager continuation prompt.
func wantsMore(output string) bool {
	tail := output
	if len(tail) > 256 {
		tail = tail[len(tail)-256:]
	}
	return moreRegex.MatchString(tail)
}

// cleanOutput turns raw shell output into the decoded command output: ANSI
// and control characters are scrubbed, the echoed command and trailing prompt
// lines are dropped, pager markers and blank lines are removed.
func cleanOutput(raw, command string) string {
	if raw == "" {
		return ""
	}

	output := scrub(raw)
	lines := strings.Split(output, "\n")

	if len(lines) > 0 && strings.Contains(lines[0], strings.TrimSpace(command)) {
		lines = lines[1:]
	}

	for len(lines) > 0 && isPromptLine(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || moreRegex.MatchString(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}
