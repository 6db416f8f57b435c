package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrDocumentRender indicates the standalone document template failed.
var ErrDocumentRender = errors.New("document template rendering failed")

// DefaultTitle is used when a document has neither an explicit title nor a
// level-one heading.
const DefaultTitle = "Document"

// DocumentData holds the values of the standalone document template.
type DocumentData struct {
	Title string
	Lang  string
	Date  string // empty omits the date meta tag
	Body  string
}

// DocumentWrapper wraps rendered fragments in a complete HTML5 document.
type DocumentWrapper struct {
	tmpl *template.Template
}

// NewDocumentWrapper parses the document template. The template receives a
// DocumentData whose Body is trusted HTML.
func NewDocumentWrapper(tmplContent string) (*DocumentWrapper, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return &DocumentWrapper{tmpl: tmpl}, nil
}

// Wrap renders the document template around data.Body.
func (w *DocumentWrapper) Wrap(ctx context.Context, data DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	var buf bytes.Buffer
	err := w.tmpl.Execute(&buf, struct {
		Title string
		Lang  string
		Date  string
		Body  template.HTML
	}{
		Title: data.Title,
		Lang:  data.Lang,
		Date:  data.Date,
		Body:  template.HTML(data.Body), // #nosec G203 -- output of our own renderers
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// ExtractTitle returns the text of the first level-one heading, or "" if
// there is none.
func ExtractTitle(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("h1").First().Text()), " ")
}
