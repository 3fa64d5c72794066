package common

// Source is one unit of input text.
type Source struct {
	URI  string
	Text string
}

func NewSource(uri, text string) *Source {
	return &Source{URI: uri, Text: text}
}
