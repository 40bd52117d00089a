package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// NativeText extracts embedded text from digitally produced PDForms by
// walking each page's content stream. It sees nothing in purely scanned
// documents; those need a real OCR collaborator.
type NativeText struct{}

var _ TextExtractor = NativeText{}

// Text implements TextExtractor.
func (NativeText) Text(ctx context.Context, path string) (string, error) {
	pdfCtx, err := readPDF(path)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text := pageText(pdfCtx, pageNr)
		if text == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

func pageCount(path string) (int, error) {
	pdfCtx, err := readPDF(path)
	if err != nil {
		return 0, err
	}
	return pdfCtx.PageCount, nil
}

func readPDF(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("document: pdf read: %w", err)
	}
	return pdfCtx, nil
}

// pdfLiteralPattern matches PDF string literals: (text here)
var pdfLiteralPattern = regexp.MustCompile(`\(([^)]*)\)`)

func pageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}

	var out strings.Builder
	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			// Show-text operators carry their strings in parentheses.
			for _, m := range pdfLiteralPattern.FindAllSubmatch(line, -1) {
				out.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			// Positioning operators separate runs of text.
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(out.String())
}

// decodePDFLiteral resolves the basic PDF string escapes, including octal
// byte values.
func decodePDFLiteral(raw []byte) string {
	var out strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case '\\', '(', ')':
			out.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				out.WriteByte(raw[i])
				break
			}
			val := int(raw[i] - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			out.WriteByte(byte(val))
		}
	}
	return out.String()
}
