package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

const (
	extTXT = ".txt"
	extPDF = ".pdf"
)

// Extractor resolves raw request input into plain email text. It is a pure
// transform over the input bytes; nothing is stored.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, input domain.RawInput) (string, error) {
	switch input.Kind {
	case domain.InputText:
		text := strings.TrimSpace(input.Text)
		if text == "" {
			return "", domain.WrapError(domain.ErrEmptyContent, "extract text field", errors.New("text field is blank"))
		}
		return text, nil
	case domain.InputFile:
		return e.extractFile(input.Filename, input.Data)
	default:
		return "", domain.WrapError(domain.ErrEmptyContent, "extract", errors.New("no text or file provided"))
	}
}

// extractFile dispatches on the filename suffix. Matching is deliberately
// case-sensitive and suffix-only; content sniffing is not performed.
func (e *Extractor) extractFile(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case strings.HasSuffix(filename, extTXT):
		text, err = extractTXT(filename, data)
	case strings.HasSuffix(filename, extPDF):
		text, err = extractPDF(data)
	default:
		return "", domain.WrapError(
			domain.ErrUnsupportedFormat,
			"extract file",
			fmt.Errorf("%s: only %s and %s are supported", filename, extTXT, extPDF),
		)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.WrapError(domain.ErrEmptyContent, "extract file", fmt.Errorf("%s yielded no text", filename))
	}
	return text, nil
}

func extractTXT(filename string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", domain.WrapError(domain.ErrExtraction, "decode txt", fmt.Errorf("%s is not valid utf-8", filename))
	}
	return string(data), nil
}

// extractPDF concatenates per-page text directly, with no separator. A page
// whose extraction fails contributes the empty string instead of aborting
// the document. The pdf parser panics on some malformed inputs, so failures
// are recovered and reported as extraction errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("pdf_extraction_panic", "panic", r)
			err = domain.WrapError(domain.ErrExtraction, "parse pdf", fmt.Errorf("parser panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "parse pdf", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			slog.Warn("pdf_page_extraction_failed", "page", pageNum, "error", pageErr)
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
