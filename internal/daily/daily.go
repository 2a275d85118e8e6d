// Package daily picks the shared "word of the day".
//
// Every player asking on the same UTC date gets the same answer: the index is
// HMAC-SHA256(salt, "YYYY-MM-DD") reduced modulo the number of answers, so it
// cannot be predicted without the salt and does not drift as the lists grow.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Mode is the start mode that selects the daily word.
const Mode = "daily"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker chooses the daily answer from a fixed list.
type Picker struct {
	salt    []byte
	answers []string
}

// NewPicker returns a Picker over answers. The slice is not copied.
func NewPicker(salt string, answers []string) *Picker {
	return &Picker{salt: []byte(salt), answers: answers}
}

// Index returns the answer index for the day containing t, or -1 when
// there are no answers.
func (p *Picker) Index(t time.Time) int {
	if len(p.answers) == 0 {
		return -1
	}
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(DateKey(t)))
	n := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(n % uint64(len(p.answers)))
}

// Pick returns the answer for the day containing t, or "" when there are no
// answers.
func (p *Picker) Pick(t time.Time) string {
	i := p.Index(t)
	if i < 0 {
		return ""
	}
	return p.answers[i]
}
