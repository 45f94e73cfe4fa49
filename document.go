package faqify

// DocumentReader extracts plain text from binary document formats.
type DocumentReader interface {
	// ReadText returns the text content of data.
	// Returns EINVALID if data is not a readable document.
	ReadText(data []byte) (string, error)
}
