package media

import (
	"bytes"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidateCV checks that data is a readable PDF of at most maxPages pages.
func ValidateCV(data []byte, maxPages int) (int, error) {
	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	pages, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("%w: unreadable pdf: %v", ErrUnsupportedType, err)
	}
	if maxPages > 0 && pages > maxPages {
		return pages, fmt.Errorf("%w: %d > %d", ErrTooManyPages, pages, maxPages)
	}
	return pages, nil
}

var attachmentTypes = []string{
	"application/pdf", "image/jpeg", "image/png", "image/webp", "text/plain",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DetectAttachment returns the extension of an allowed chat attachment.
func DetectAttachment(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	for _, allowed := range attachmentTypes {
		if mt.Is(allowed) {
			return mt.Extension(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
}
