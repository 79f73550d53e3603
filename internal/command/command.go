// Package command parses command-palette input. Palette commands are a
// verb plus an argument ("theme dark", "columns 4", "page Work"); verbs
// match on any unambiguous prefix. Input that resolves to no verb falls
// through to search.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a palette command.
type Kind int

const (
	KindTheme Kind = iota
	KindColumns
	KindPage
)

// Command is one parsed palette command.
type Command struct {
	Kind    Kind
	Arg     string // theme or page name
	Columns int    // column count for KindColumns
}

// verbs maps every full verb to its kind.
var verbs = map[string]Kind{
	"theme":   KindTheme,
	"columns": KindColumns,
	"page":    KindPage,
}

// Parse interprets palette input. ok reports whether the input is a
// command at all; a recognized verb with a bad argument returns an error.
func Parse(input string) (Command, bool, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	verb, ok := matchVerb(strings.ToLower(fields[0]))
	if !ok {
		return Command{}, false, nil
	}
	kind := verbs[verb]
	arg := strings.Join(fields[1:], " ")

	switch kind {
	case KindColumns:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > 6 {
			return Command{}, true, fmt.Errorf("columns wants a count between 1 and 6, got %q", arg)
		}
		return Command{Kind: KindColumns, Columns: n}, true, nil
	default:
		if arg == "" {
			return Command{}, true, fmt.Errorf("%s wants an argument", verb)
		}
		return Command{Kind: kind, Arg: arg}, true, nil
	}
}

// Complete returns the full verbs matching a prefix, for palette hints.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, verb := range []string{"columns", "page", "theme"} {
		if strings.HasPrefix(verb, prefix) {
			out = append(out, verb)
		}
	}
	return out
}

// matchVerb resolves a (possibly abbreviated) verb. Ambiguous or unknown
// prefixes resolve to nothing.
func matchVerb(word string) (string, bool) {
	if _, ok := verbs[word]; ok {
		return word, true
	}
	var found string
	for verb := range verbs {
		if strings.HasPrefix(verb, word) {
			if found != "" {
				return "", false // ambiguous
			}
			found = verb
		}
	}
	return found, found != ""
}
