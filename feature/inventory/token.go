package inventory

import (
	"regexp"
	"strings"
)

// tokenPattern splits a command line into arguments: a double-quoted segment
// is one argument, otherwise tokens are words, numbers, or lowercase
// alphanumerics with internal hyphens (UUID-style SKUs).
var tokenPattern = regexp.MustCompile(`"[^"]+"|[a-z0-9]+(?:-*[a-z0-9]+)+|[a-zA-Z]+|[0-9]+`)

// Tokenize parses a raw input line into arguments. Enclosing double quotes
// are stripped. A line with nothing recognizable returns nil.
func Tokenize(line string) []string {
	args := tokenPattern.FindAllString(strings.TrimSpace(line), -1)
	for i := range args {
		args[i] = strings.ReplaceAll(args[i], `"`, "")
	}
	return args
}
