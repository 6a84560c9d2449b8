package parser

import (
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// Config holds the parser's calibration knobs. The confidence thresholds
// gate strategy acceptance; they are tunable, not laws.
type Config struct {
	// AcceptConfidence is the quality score at which a strategy's output
	// is accepted without trying further strategies.
	AcceptConfidence float64
	// FloorConfidence is the minimum quality of the best attempt below
	// which the document is reported unreadable.
	FloorConfidence float64
	// MinWordCount is the word count below which a document is treated
	// as effectively empty for scoring purposes.
	MinWordCount int
}

// DefaultConfig returns the default parser configuration.
func DefaultConfig() Config {
	return Config{
		AcceptConfidence: 0.7,
		FloorConfidence:  0.3,
		MinWordCount:     50,
	}
}

// strategy is one extraction attempt for a given format. Salvage
// strategies pull text straight from the byte stream, so their output
// is always printable; quality scoring must not let that signal alone
// carry them over the unreadability floor.
type strategy struct {
	name    string
	extract func(data []byte) ([]types.Paragraph, error)
	salvage bool
}

// Parser extracts structured text from uploaded documents.
type Parser struct {
	cfg Config
}

// New creates a parser with the given configuration.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse converts document bytes into a ParsedDocument. Strategies for the
// declared format are tried in order; the first whose quality score clears
// AcceptConfidence wins. If none does, the best-scoring attempt is kept
// and returned with its lower confidence annotated, unless it falls below
// FloorConfidence, in which case the document is unreadable.
func (p *Parser) Parse(data []byte, format types.Format) (*types.ParsedDocument, error) {
	strategies, err := p.strategiesFor(data, format)
	if err != nil {
		return nil, err
	}

	var (
		best        *types.ParsedDocument
		bestQuality float64
		lastErr     error
		attempts    int
		sawText     bool
	)

	for _, strat := range strategies {
		attempts++
		paragraphs, err := strat.extract(data)
		if err != nil {
			lastErr = err
			continue
		}
		paragraphs = dropEmptyParagraphs(paragraphs)
		doc := &types.ParsedDocument{Paragraphs: paragraphs, Strategy: strat.name}
		if len(paragraphs) > 0 && strings.TrimSpace(doc.Text()) != "" {
			sawText = true
		}

		quality := p.qualityScore(doc)
		if strat.salvage {
			quality *= p.wordVolumeScore(doc)
		}
		doc.Confidence = quality

		if quality >= p.cfg.AcceptConfidence {
			return doc, nil
		}
		if best == nil || quality > bestQuality {
			best = doc
			bestQuality = quality
		}
	}

	if best == nil {
		return nil, &UnreadableDocumentError{
			Format:   string(format),
			Attempts: attempts,
			Cause:    lastErr,
		}
	}
	if !sawText {
		return nil, &EmptyDocumentError{Format: string(format)}
	}
	if bestQuality < p.cfg.FloorConfidence {
		return nil, &UnreadableDocumentError{
			Format:   string(format),
			Attempts: attempts,
			Best:     bestQuality,
		}
	}
	return best, nil
}

// MinWordCount exposes the configured empty-document threshold so the
// scoring engine can short-circuit near-empty documents.
func (p *Parser) MinWordCount() int {
	return p.cfg.MinWordCount
}

// strategiesFor returns the ordered strategy chain for a format, after
// rejecting documents with encryption markers up front.
func (p *Parser) strategiesFor(data []byte, format types.Format) ([]strategy, error) {
	switch format {
	case types.FormatPDF:
		if pdfIsEncrypted(data) {
			return nil, &ProtectedDocumentError{Format: string(format)}
		}
		return []strategy{
			{name: "pdf-styled", extract: extractPDFStyled},
			{name: "pdf-plain", extract: extractPDFPlain},
			{name: "pdf-salvage", extract: extractPDFSalvage, salvage: true},
		}, nil
	case types.FormatDOCX:
		if docxIsEncrypted(data) {
			return nil, &ProtectedDocumentError{Format: string(format)}
		}
		return []strategy{
			{name: "docx-styled", extract: extractDocxStyled},
			{name: "docx-strip", extract: extractDocxStrip},
		}, nil
	case types.FormatTXT:
		return []strategy{
			{name: "text-plain", extract: extractPlainText},
		}, nil
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}

// dropEmptyParagraphs removes paragraphs that are pure whitespace.
func dropEmptyParagraphs(paragraphs []types.Paragraph) []types.Paragraph {
	out := paragraphs[:0]
	for _, para := range paragraphs {
		para.Text = strings.TrimSpace(para.Text)
		if para.Text != "" {
			out = append(out, para)
		}
	}
	return out
}
