// Package assets embeds the default word lists used by the evaluator.
// Both are one word per line; blank lines and lines starting with '#' are
// ignored by the words package.
package assets

import _ "embed"

// Answers is the default answer list.
//
//go:embed answers.txt
var Answers string

// Allowed is the default list of extra accepted guesses.
//
//go:embed allowed.txt
var Allowed string
