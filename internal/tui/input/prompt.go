// Package input parses the quick-entry prompt.
package input

import "strings"

// EntryInput is a parsed quick-entry line: "[@author] title [| body]".
type EntryInput struct {
	Author string
	Title  string
	Body   string
}

// ParseEntry splits a prompt line into author, title and body.
// Author is empty when the line has no leading @mention.
func ParseEntry(line string) EntryInput {
	line = strings.TrimSpace(line)

	var in EntryInput
	if strings.HasPrefix(line, "@") {
		mention, rest, _ := strings.Cut(line, " ")
		in.Author = strings.TrimPrefix(mention, "@")
		line = strings.TrimSpace(rest)
	}

	title, body, _ := strings.Cut(line, "|")
	in.Title = strings.TrimSpace(title)
	in.Body = strings.TrimSpace(body)
	return in
}

// MatchingPartners returns partners whose name starts with the @mention
// being typed. It returns nil once the mention is complete.
func MatchingPartners(input string, partners []string) []string {
	input = strings.TrimLeft(input, " ")
	if !strings.HasPrefix(input, "@") || strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimPrefix(input, "@"))
	matches := make([]string, 0, len(partners))
	for _, p := range partners {
		if strings.HasPrefix(strings.ToLower(p), prefix) {
			matches = append(matches, p)
		}
	}
	return matches
}

// AutocompletePartner completes the @mention with the first matching partner.
func AutocompletePartner(input string, partners []string) (string, bool) {
	matches := MatchingPartners(input, partners)
	if len(matches) == 0 {
		return "", false
	}
	return "@" + matches[0] + " ", true
}
