package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// topWords caps the word-frequency table.
const topWords = 20

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// Result holds the lightweight text statistics returned with every summary.
type Result struct {
	WordCount           int           `json:"word_count"`
	CharCount           int           `json:"char_count"`
	SentenceCount       int           `json:"sentence_count"`
	AvgWordsPerSentence float64       `json:"avg_words_per_sentence"`
	WordFrequency       WordFrequency `json:"word_freq"`
}

// Analyze computes basic metrics over plain text. Words are whitespace
// delimited, sentences are non-blank segments between runs of terminal
// punctuation, and the frequency table counts case-folded alphabetic tokens
// of three or more letters.
func Analyze(text string) Result {
	wordCount := len(strings.Fields(text))
	sentenceCount := countSentences(text)

	divisor := sentenceCount
	if divisor < 1 {
		divisor = 1
	}
	avg := math.Round(float64(wordCount)/float64(divisor)*10) / 10

	return Result{
		WordCount:           wordCount,
		CharCount:           utf8.RuneCountInString(text),
		SentenceCount:       sentenceCount,
		AvgWordsPerSentence: avg,
		WordFrequency:       wordFrequency(text),
	}
}

func countSentences(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func wordFrequency(text string) WordFrequency {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort keeps first-encountered order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topWords {
		order = order[:topWords]
	}

	freq := make(WordFrequency, len(order))
	for i, token := range order {
		freq[i] = WordCount{Word: token, Count: counts[token]}
	}
	return freq
}
