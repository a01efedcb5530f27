package models

// Document is one uploaded CV waiting for extraction. Content is owned by
// whoever processes the document; it is never shared between workers.
type Document struct {
	ID      string
	Name    string
	Content []byte
}
