package summarizer

import "strings"

// Combine merges ordered per-chunk parts into one summary. Bullet Points
// deduplicates bullet candidates across parts (exact trimmed equality, first
// occurrence wins, order preserved); every other style concatenates the parts
// separated by blank lines.
func Combine(parts []Part, style Style) string {
	texts := RenderParts(parts)
	if style != StyleBulletPoints {
		return strings.Join(texts, "\n\n")
	}

	var candidates []string
	for _, text := range texts {
		candidates = append(candidates, bulletCandidates(text)...)
	}

	seen := make(map[string]struct{}, len(candidates))
	lines := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		lines = append(lines, "• "+candidate)
	}
	return strings.Join(lines, "\n")
}

// bulletCandidates extracts the segments following bullet markers, falling
// back to sentence splitting when the part carries no marker at all. Text
// before the first marker is a preamble, not a bullet, and is discarded.
func bulletCandidates(text string) []string {
	if !strings.Contains(text, "•") {
		return splitSentences(text)
	}
	segments := strings.Split(text, "•")[1:]
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment = strings.TrimSpace(segment); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}
