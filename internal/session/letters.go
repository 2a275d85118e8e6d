package session

// LetterStatusMap holds the strongest mark seen for each letter a–z.
// It is a value type: Merge returns a new map and leaves its input alone.
type LetterStatusMap [26]Mark

// Get returns the mark for r, or MarkNone for letters never guessed and
// for anything that is not a letter. Upper and lower case are equivalent.
func (m LetterStatusMap) Get(r rune) Mark {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if !isLetter(r) {
		return MarkNone
	}
	return m[r-'a']
}

// Len returns the number of letters with a mark.
func (m LetterStatusMap) Len() int {
	n := 0
	for _, v := range m {
		if v != MarkNone {
			n++
		}
	}
	return n
}

// Merge folds one guess into cur. For each position the letter keeps the
// stronger of its current mark and the new one, so a green letter is never
// downgraded, merging the same guess twice changes nothing, and the order in
// which positions are visited does not matter.
func Merge(cur LetterStatusMap, word string, feedback [WordLength]Mark) LetterStatusMap {
	next := cur
	for i, r := range word {
		if i >= WordLength {
			break
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if !isLetter(r) {
			continue
		}
		if m := feedback[i]; m > next[r-'a'] {
			next[r-'a'] = m
		}
	}
	return next
}

// Project recomputes the map from scratch over a guess history.
func Project(guesses []Guess) LetterStatusMap {
	var m LetterStatusMap
	for _, g := range guesses {
		m = Merge(m, g.word, g.feedback)
	}
	return m
}
