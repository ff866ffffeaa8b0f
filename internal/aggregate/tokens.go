package aggregate

import "strings"

// EstimateTokens gives a rough token count from the word count. The ratio is
// the common BPE rule of thumb for English text (about 0.75 words per token,
// i.e. ~1.33 tokens per word). Good enough to size a context window.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	tokens := int(float64(words) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}
