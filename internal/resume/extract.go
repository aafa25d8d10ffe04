package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEText = "text/plain"
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// MIMEFromFilename maps a resume file name to one of the supported MIME types.
func MIMEFromFilename(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return MIMEText, nil
	case ".pdf":
		return MIMEPDF, nil
	case ".docx":
		return MIMEDocx, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
}

// ExtractText pulls the plain text out of an uploaded resume.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MIMEText:
		return string(data), nil

	case MIMEPDF:
		return extractPDFText(bytes.NewReader(data))

	case MIMEDocx:
		return extractDocxText(bytes.NewReader(data))

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
}

func extractPDFText(r *bytes.Reader) (string, error) {
	pdfReader, err := pdf.NewReader(r, r.Size())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var text strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, _ := page.GetPlainText(nil)
		text.WriteString(t)
	}
	return text.String(), nil
}

func extractDocxText(r io.ReaderAt) (string, error) {
	size := int64(0)
	if br, ok := r.(*bytes.Reader); ok {
		size = br.Size()
	}
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
