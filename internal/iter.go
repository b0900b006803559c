package internal

import (
	"iter"
	"strings"
)

// NumberedLines yields each newline-separated line of text with its
// 1-based line number. A trailing newline yields a final empty line, so
// joining the yielded lines with "\n" reproduces text exactly.
func NumberedLines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineno := 0
		for line := range strings.SplitSeq(text, "\n") {
			lineno++
			if !yield(lineno, line) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}
