package content

import (
	"strings"

	"portfolio/constants"
)

// WordCount counts whitespace separated, non-empty tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadingTime estimates minutes to read s: ceil(words / 200).
func ReadingTime(s string) int {
	words := WordCount(s)
	return (words + constants.WORDS_PER_MINUTE - 1) / constants.WORDS_PER_MINUTE
}
