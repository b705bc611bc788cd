package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chunk splits text into sentence-aligned chunks of at most maxChunkChars
// characters. The limit is a soft target: a single sentence longer than the
// budget becomes its own oversized chunk rather than being split mid-sentence.
// A non-positive maxChunkChars degrades to one sentence per chunk.
func Chunk(text string, maxChunkChars int) []string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}
	if maxChunkChars <= 0 {
		return sentences
	}

	var (
		chunks     []string
		current    strings.Builder
		currentLen int // budget is counted in runes, not bytes
	)
	for _, sentence := range sentences {
		sentenceLen := utf8.RuneCountInString(sentence)
		needed := currentLen + sentenceLen
		if currentLen > 0 {
			needed++ // joining space
		}
		if currentLen > 0 && needed > maxChunkChars {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(sentence)
		currentLen += sentenceLen
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// splitSentences cuts text after a run of terminal punctuation (. ! ?)
// followed by whitespace. The punctuation stays with its sentence; the
// separating whitespace is dropped. Blank candidates are skipped.
func splitSentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)
	flush := func() {
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isTerminal(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && isTerminal(runes[j]) {
			current.WriteRune(runes[j])
			j++
		}
		if j < len(runes) && unicode.IsSpace(runes[j]) {
			flush()
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
		}
		i = j - 1
	}
	flush()
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
