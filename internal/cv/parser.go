// Package cv turns uploaded resume files into plain text for the analyzer.
package cv

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Document is the plain-text view of an uploaded resume file.
type Document struct {
	Filename string
	FileType string
	Text     string
}

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts text from a PDF, Word, or plain-text resume. Nothing is
// written to disk; the upload is consumed directly from the reader.
func (p *Parser) Parse(filename string, reader io.Reader) (*Document, error) {
	fileType := strings.ToLower(filepath.Ext(filename))

	var text string
	switch fileType {
	case ".pdf", ".doc", ".docx":
		res, err := docconv.Convert(reader, mimeTypes[fileType], true)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	return &Document{
		Filename: filename,
		FileType: fileType,
		Text:     text,
	}, nil
}
