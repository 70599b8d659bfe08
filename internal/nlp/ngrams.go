// Package nlp generates text from n-gram models and toy grammars.
package nlp

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// MaxWords bounds every generated sentence.
const MaxWords = 1000

var (
	ErrTooLong = errors.New("generated text exceeded the length limit")
	ErrDeadEnd = errors.New("no transition from current state")
)

var wordPattern = regexp.MustCompile(`[\w']+|\.`)

// Words splits text into words and periods, folding curly apostrophes.
func Words(text string) []string {
	text = strings.ReplaceAll(text, "’", "'")
	return wordPattern.FindAllString(text, -1)
}

// Transitions maps a word to every word that followed it.
type Transitions map[string][]string

// Bigrams collects the successors of every word in document.
func Bigrams(document []string) Transitions {
	transitions := make(Transitions)
	for i := 0; i+1 < len(document); i++ {
		prev, cur := document[i], document[i+1]
		transitions[prev] = append(transitions[prev], cur)
	}
	return transitions
}

// GenerateUsingBigrams starts after a period and walks the chain until the next one.
func GenerateUsingBigrams(rng *rand.Rand, transitions Transitions) (string, error) {
	current := "."
	var result []string
	for {
		candidates := transitions[current]
		if len(candidates) == 0 {
			return strings.Join(result, " "), fmt.Errorf("after %q: %w", current, ErrDeadEnd)
		}
		current = candidates[rng.Intn(len(candidates))]
		result = append(result, current)
		if current == "." {
			return strings.Join(result, " "), nil
		}
		if len(result) >= MaxWords {
			return strings.Join(result, " "), ErrTooLong
		}
	}
}

// TrigramKey is a pair of consecutive words.
type TrigramKey [2]string

// TrigramTransitions maps a word pair to every word that followed it.
type TrigramTransitions map[TrigramKey][]string

// Trigrams returns the sentence starters (words following a period) and the
// pair transitions of document.
func Trigrams(document []string) (starts []string, transitions TrigramTransitions) {
	transitions = make(TrigramTransitions)
	for i := 0; i+2 < len(document); i++ {
		prev, cur, next := document[i], document[i+1], document[i+2]
		if prev == "." {
			starts = append(starts, cur)
		}
		key := TrigramKey{prev, cur}
		transitions[key] = append(transitions[key], next)
	}
	return starts, transitions
}

// GenerateUsingTrigrams picks a starter and walks pair transitions until a period.
func GenerateUsingTrigrams(rng *rand.Rand, starts []string, transitions TrigramTransitions) (string, error) {
	if len(starts) == 0 {
		return "", fmt.Errorf("no sentence starters: %w", ErrDeadEnd)
	}
	current := starts[rng.Intn(len(starts))]
	prev := "."
	result := []string{current}
	for {
		candidates := transitions[TrigramKey{prev, current}]
		if len(candidates) == 0 {
			return strings.Join(result, " "), fmt.Errorf("after %q %q: %w", prev, current, ErrDeadEnd)
		}
		prev, current = current, candidates[rng.Intn(len(candidates))]
		result = append(result, current)
		if current == "." {
			return strings.Join(result, " "), nil
		}
		if len(result) >= MaxWords {
			return strings.Join(result, " "), ErrTooLong
		}
	}
}
