// internal/words/words.go
//
// Word list management for the evaluator.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers ∪ guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats.
//
// Loading behavior (Load):
//   1. Both paths set: answers from the first, allowed guesses from the second.
//   2. Only the allowed path set: that file serves as both lists.
//   3. Neither set: embedded assets/answers.txt and assets/allowed.txt.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); anything else is skipped.
//   • Lists are normalized to lowercase.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-tui/assets"
)

// ErrEmpty is returned when no usable answer words were found.
var ErrEmpty = errors.New("words: answers list is empty")

// Dictionary is an immutable pair of word lists.
type Dictionary struct {
	answers    []string            // canonical answers
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
}

// Load builds a Dictionary; see the package comment for path handling.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = readWords(strings.NewReader(assets.Answers), "embedded answers"); err != nil {
			return nil, err
		}
		if allowList, err = readWords(strings.NewReader(assets.Allowed), "embedded allowed"); err != nil {
			return nil, err
		}
	}

	return FromLists(ansList, allowList)
}

// FromLists builds a Dictionary from in-memory lists. Answers are always
// accepted as guesses.
func FromLists(answers, allowed []string) (*Dictionary, error) {
	ans := normalize(answers)
	if len(ans) == 0 {
		return nil, ErrEmpty
	}
	d := &Dictionary{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range normalize(allowed) {
		d.allowedSet[w] = struct{}{}
	}
	return d, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return readWords(f, path)
}

// readWords reads one word per line, skipping '#' comments.
func readWords(r io.Reader, name string) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", name, err)
	}
	return normalize(out), nil
}

// normalize lowercases and trims, keeping only 5-letter alphabetic words.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[nBig.Int64()]
}

// Answers returns the answer list in load order. Callers must not modify it.
func (d *Dictionary) Answers() []string { return d.answers }

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}
