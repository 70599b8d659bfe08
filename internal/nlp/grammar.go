package nlp

import (
	"fmt"
	"math/rand"
	"strings"
)

// Grammar maps a nonterminal such as "_NP" to its alternatives. Each
// alternative is a space separated list of tokens.
type Grammar map[string][]string

// DefaultGrammar is a small English-ish grammar.
func DefaultGrammar() Grammar {
	return Grammar{
		"_S":  {"_NP _VP"},
		"_NP": {"_N", "_A _NP _P _A _N"},
		"_VP": {"_V", "_V _NP"},
		"_N":  {"data science", "Python", "regression"},
		"_A":  {"big", "linear", "logistic"},
		"_P":  {"about", "near"},
		"_V":  {"learns", "trains", "tests", "is"},
	}
}

// IsTerminal reports whether token needs no further expansion.
func IsTerminal(token string) bool {
	return !strings.HasPrefix(token, "_")
}

// Expand replaces nonterminals in tokens, left to right, until only
// terminals remain or the result grows past MaxWords.
func Expand(rng *rand.Rand, grammar Grammar, tokens []string) ([]string, error) {
	tokens = append([]string(nil), tokens...)
	for {
		i := firstNonterminal(tokens)
		if i < 0 {
			return tokens, nil
		}
		if len(tokens) > MaxWords {
			return tokens, ErrTooLong
		}

		rules := grammar[tokens[i]]
		if len(rules) == 0 {
			return tokens, fmt.Errorf("no rule for %s: %w", tokens[i], ErrDeadEnd)
		}
		replacement := rules[rng.Intn(len(rules))]

		if IsTerminal(replacement) {
			tokens[i] = replacement
			continue
		}
		expanded := make([]string, 0, len(tokens)+4)
		expanded = append(expanded, tokens[:i]...)
		expanded = append(expanded, strings.Fields(replacement)...)
		expanded = append(expanded, tokens[i+1:]...)
		tokens = expanded
	}
}

func firstNonterminal(tokens []string) int {
	for i, t := range tokens {
		if !IsTerminal(t) {
			return i
		}
	}
	return -1
}

// GenerateSentence expands the start symbol "_S".
func GenerateSentence(rng *rand.Rand, grammar Grammar) ([]string, error) {
	return Expand(rng, grammar, []string{"_S"})
}
