package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// pdfIsEncrypted detects the encryption dictionary marker in the raw
// bytes. Encrypted PDFs cannot be text-extracted without a password.
func pdfIsEncrypted(data []byte) bool {
	return bytes.Contains(data, []byte("/Encrypt"))
}

// extractPDFStyled reads page content row by row, preserving font name
// and size so downstream section detection can use bold/size signals.
func extractPDFStyled(data []byte) (paragraphs []types.Paragraph, err error) {
	// The pdf library panics on some malformed files; a failed strategy
	// must report an error so the chain can fall through.
	defer func() {
		if r := recover(); r != nil {
			paragraphs = nil
			err = fmt.Errorf("pdf styled extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			var sb strings.Builder
			bold := len(row.Content) > 0
			var maxSize float64
			for _, word := range row.Content {
				if sb.Len() > 0 && needsSpace(sb.String(), word.S) {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
				if !strings.Contains(word.Font, "Bold") {
					bold = false
				}
				if word.FontSize > maxSize {
					maxSize = word.FontSize
				}
			}
			text := strings.TrimSpace(sb.String())
			if text == "" {
				continue
			}
			para := types.Paragraph{Text: text, IsBold: bold, StyleHint: types.StyleNone}
			if maxSize > 0 {
				size := maxSize
				para.FontSizePt = &size
			}
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs, nil
}

// extractPDFPlain is the secondary strategy: whole-document plain text
// with paragraph boundaries at newlines, no style attributes.
func extractPDFPlain(data []byte) (paragraphs []types.Paragraph, err error) {
	defer func() {
		if r := recover(); r != nil {
			paragraphs = nil
			err = fmt.Errorf("pdf plain extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	rs, err := reader.GetPlainText()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return nil, err
	}
	return linesToParagraphs(buf.String()), nil
}

// extractPDFSalvage is the last resort: pull printable character runs
// straight out of the byte stream. The output is rough but lets a
// low-confidence score proceed with a warning instead of failing.
func extractPDFSalvage(data []byte) ([]types.Paragraph, error) {
	var sb strings.Builder
	var run []byte
	flush := func() {
		// Short runs between binary bytes are almost always stream
		// noise, not words.
		if len(run) >= 4 {
			sb.Write(run)
			sb.WriteByte('\n')
		}
		run = run[:0]
	}
	for _, b := range data {
		if (b >= 0x20 && b < 0x7f) || b == '\t' {
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()
	return linesToParagraphs(sb.String()), nil
}

// needsSpace reports whether joining two row fragments requires a space.
func needsSpace(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	return !strings.HasSuffix(left, " ") && !strings.HasPrefix(right, " ")
}

// linesToParagraphs converts newline-separated text into unstyled
// paragraphs, skipping blank lines.
func linesToParagraphs(text string) []types.Paragraph {
	var paragraphs []types.Paragraph
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, types.Paragraph{Text: line, StyleHint: types.StyleNone})
	}
	return paragraphs
}
