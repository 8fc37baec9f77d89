package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Text extracts the plain text of an uploaded file, picking a strategy by
// file extension. Unknown extensions are treated as plain text.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".md", ".markdown":
		return markdownText(data), nil
	default:
		return string(data), nil
	}
}

// pdfText walks the document page by page. Pages that fail to decode are
// skipped rather than failing the whole file, matching how empty pages are
// handled.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			logrus.WithError(err).WithField("page", i).Debug("skipping unreadable pdf page")
			continue
		}
		pages = append(pages, content)
	}

	return strings.Join(pages, "\n"), nil
}

// markdownText strips Markdown structure by walking the parsed AST and
// collecting the text segments of block-level nodes.
func markdownText(source []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(source))
			}
		}

		if t, ok := n.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}
