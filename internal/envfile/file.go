package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFileName is the secrets file looked up when no path is given
const DefaultFileName = ".env.github"

const maxLineSize = 1024 * 1024

// ParseFile reads and parses a secrets definition file
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading secrets file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads key=value definitions from r in line order.
// Blank and comment lines are dropped, malformed lines are kept with Err set.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var entries []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		entry.Line = lineNo
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning secrets file: %w", err)
	}

	return entries, nil
}

// ParseLine parses a single definition line. The second return value is
// false for blank and '#' comment lines.
//
// The value is split on the first '=' only, so it may itself contain '='.
// One matching pair of surrounding single or double quotes is removed.
// Escaped or unbalanced quotes are not interpreted.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	name, value, found := strings.Cut(line, "=")
	if !found {
		return Entry{Raw: line, Err: ErrMissingDelimiter}, true
	}

	return Entry{
		Name:  strings.TrimSpace(name),
		Value: StripQuotes(value),
		Raw:   line,
	}, true
}

// StripQuotes removes one matching pair of surrounding quotes.
// A value made of a single quote character counts as both ends and
// becomes empty.
func StripQuotes(value string) string {
	if len(value) < 1 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first != last || (first != '"' && first != '\'') {
		return value
	}
	if len(value) == 1 {
		return ""
	}
	return value[1 : len(value)-1]
}
