// Package export renders persisted poems as standalone HTML documents.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/renga-collective/renga/poem"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 36rem; margin: 3rem auto; font-family: Georgia, serif; line-height: 1.6; color: #222; }
em { color: #555; }
hr { border: none; border-top: 1px solid #ddd; margin: 2rem 0; }
footer { font-size: 0.85rem; color: #888; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

// Render writes the record as a standalone HTML page. The poem's verse is
// built as Markdown with hard line breaks, generated lines emphasized, and
// a metadata footer, then converted with goldmark.
func Render(rec poem.Record, w io.Writer) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(markdown(rec)), &body); err != nil {
		return fmt.Errorf("render poem: %w", err)
	}

	return page.Execute(w, pageData{
		Title: title(rec),
		Body:  template.HTML(body.String()),
	})
}

// File renders the record into an HTML file at path.
func File(rec poem.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export poem: %w", err)
	}
	if err := Render(rec, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func markdown(rec poem.Record) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(title(rec))
	b.WriteString("\n\n")

	// Backslash breaks keep each line its own verse line. A trailing
	// backslash on the paragraph's last line would render literally, so
	// the lines are joined rather than terminated.
	verse := make([]string, len(rec.Lines))
	for i, line := range rec.Lines {
		if line.Author == poem.AuthorAI {
			verse[i] = "*" + line.Text + "*"
		} else {
			verse[i] = line.Text
		}
	}
	b.WriteString(strings.Join(verse, "\\\n"))

	b.WriteString("\n\n---\n\n")
	fmt.Fprintf(&b, "generator %s, model %s, %s\n", rec.Generator, rec.Model, rec.CreatedAt)
	return b.String()
}

func title(rec poem.Record) string {
	if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		return "Renga, " + t.Format("2 January 2006")
	}
	return "Renga"
}
