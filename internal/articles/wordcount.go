package articles

import (
	"math"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = 300

var wordParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// CountWords counts the readable words of a markdown body. Each CJK
// character counts as one word, runs of other letters and digits count as
// one word each. Code blocks, raw HTML and link destinations are skipped.
func CountWords(body []byte) int {
	doc := wordParser.Parse(text.NewReader(body))

	words := 0
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			words += countText(n.Segment.Value(body))
		case *ast.String:
			words += countText(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return words
}

// ReadingMinutes converts a word count into whole minutes, rounding up.
// Any non-empty post takes at least one minute.
func ReadingMinutes(words, wordsPerMinute int) int {
	if words <= 0 {
		return 0
	}
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

func countText(value []byte) int {
	count := 0
	inWord := false
	for _, r := range string(value) {
		switch {
		case isCJK(r):
			count++
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' && inWord:
			if !inWord {
				count++
				inWord = true
			}
		default:
			inWord = false
		}
	}
	return count
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}
