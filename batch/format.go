package batch

import "fmt"

// TruncateSource shortens a source label for display, keeping the end
// which is more informative.
func TruncateSource(label string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return label[:min(len(label), maxLen)]
	}
	if len(label) <= maxLen {
		return label
	}
	return "..." + label[len(label)-maxLen+3:]
}

// FormatTokens formats a token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
