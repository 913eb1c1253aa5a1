package domain

// FallbackBook is the display label used when a record carries no book
// name and no resolvable reference.
const FallbackBook = "Scripture"

// Record is one retrievable unit of scriptural content. Records are
// loaded once at startup and are read-only for the process lifetime.
type Record struct {
	Book     string   `json:"book"`
	Ref      string   `json:"ref,omitempty"`
	Sanskrit string   `json:"sanskrit,omitempty"`
	Meaning  string   `json:"meaning,omitempty"`
	Text     string   `json:"text,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// DisplayText returns the primary natural-language content of the
// record: the meaning when present, otherwise the raw text. Both may be
// empty, in which case the empty string is returned.
func (r Record) DisplayText() string {
	if r.Meaning != "" {
		return r.Meaning
	}
	return r.Text
}

// DisplayBook returns the record's book name, or FallbackBook when the
// record carries none.
func (r Record) DisplayBook() string {
	if r.Book != "" {
		return r.Book
	}
	return FallbackBook
}
