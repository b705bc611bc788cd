package analysis

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// WordCount is one word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequency is an ordered word-to-count table. It serializes as a JSON
// object whose keys appear in descending-count order, matching the ordered
// mapping the API contract promises.
type WordFrequency []WordCount

// MarshalJSON renders the table as an insertion-ordered object.
func (f WordFrequency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
