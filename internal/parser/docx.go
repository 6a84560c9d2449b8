package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

// oleMagic is the compound-file header used by encrypted OOXML packages
// (and legacy .doc files). A .docx that is not a zip but starts with it
// is password-protected.
var oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

// docxIsEncrypted detects password-protected OOXML packages.
func docxIsEncrypted(data []byte) bool {
	if bytes.HasPrefix(data, oleMagic) {
		return true
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if f.Name == "EncryptedPackage" {
			return true
		}
	}
	return false
}

// readDocumentXML pulls word/document.xml out of the package.
func readDocumentXML(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, errors.New("no word/document.xml found in docx")
}

// extractDocxStyled walks the WordprocessingML token stream and emits one
// paragraph per w:p element, keeping the leading run's bold flag, the
// leading run's size (half-points converted to points), and the heading
// style hint from w:pStyle.
func extractDocxStyled(data []byte) ([]types.Paragraph, error) {
	docXML, err := readDocumentXML(data)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	var paragraphs []types.Paragraph

	var (
		inParagraph bool
		inRunProps  bool
		current     types.Paragraph
		leadingRun  bool // still before the first run with text
		runBold     bool
		runSizePt   *float64
		textBuf     strings.Builder
	)

	resetParagraph := func() {
		current = types.Paragraph{StyleHint: types.StyleNone}
		leadingRun = true
		runBold = false
		runSizePt = nil
		textBuf.Reset()
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				resetParagraph()
			case "rPr":
				inRunProps = true
				runBold = false
				runSizePt = nil
			case "pStyle":
				if strings.HasPrefix(attrValue(el, "val"), "Heading") {
					current.StyleHint = types.StyleHeading
				}
			case "b":
				if inRunProps && attrValue(el, "val") != "false" && attrValue(el, "val") != "0" {
					runBold = true
				}
			case "sz":
				if inRunProps {
					if halfPoints, err := strconv.ParseFloat(attrValue(el, "val"), 64); err == nil {
						pt := halfPoints / 2
						runSizePt = &pt
					}
				}
			case "tab":
				textBuf.WriteByte('\t')
			case "br":
				textBuf.WriteByte(' ')
			}
		case xml.CharData:
			if inParagraph {
				if leadingRun && len(bytes.TrimSpace(el)) > 0 {
					current.IsBold = runBold
					current.FontSizePt = runSizePt
					leadingRun = false
				}
				textBuf.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "rPr":
				inRunProps = false
			case "p":
				inParagraph = false
				current.Text = strings.TrimSpace(textBuf.String())
				if current.Text != "" {
					paragraphs = append(paragraphs, current)
				}
			}
		}
	}

	return paragraphs, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDocxStrip is the fallback strategy: convert paragraph ends to
// newlines and strip every remaining tag. No style attributes survive.
func extractDocxStrip(data []byte) ([]types.Paragraph, error) {
	docXML, err := readDocumentXML(data)
	if err != nil {
		return nil, err
	}
	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagPattern.ReplaceAllString(text, " ")
	return linesToParagraphs(text), nil
}

// extractPlainText handles .txt uploads: one paragraph per non-blank line.
func extractPlainText(data []byte) ([]types.Paragraph, error) {
	return linesToParagraphs(string(data)), nil
}

// attrValue returns the value of the (namespace-agnostic) attribute.
func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
