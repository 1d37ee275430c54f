// internal/textutil/split.go
package textutil

import "strings"

// Split разбивает строку по разделителю.
//
// Unlike strings.Split, zero-length tokens are dropped, so leading, trailing
// and repeated delimiters produce no empty entries. The delimiter may be
// longer than one character. An empty input gives an empty, non-nil slice;
// an empty delimiter or one that never occurs gives the whole input.
//
//	Split("a,,b", ",") // => ["a" "b"]
func Split(input, delimiter string) []string {
	tokens := []string{}
	if input == "" {
		return tokens
	}
	if delimiter == "" {
		return append(tokens, input)
	}

	for {
		i := strings.Index(input, delimiter)
		if i < 0 {
			break
		}
		if i > 0 {
			tokens = append(tokens, input[:i])
		}
		input = input[i+len(delimiter):]
	}

	if input != "" {
		tokens = append(tokens, input)
	}
	return tokens
}
