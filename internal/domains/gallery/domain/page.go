package domain

import (
	"bytes"
	"html/template"

	"github.com/imgreport/imgreport/internal/platform/paths"
)

// card is one image+caption unit on a report page.
type card struct {
	Name    string
	Href    template.URL
	Caption string
}

type reportPage struct {
	Title      string
	ImageCount int
	Cards      []card
}

var reportTmpl = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="fa" dir="rtl">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>Report - {{.Title}}</title>
  <style>
    body { font-family: sans-serif; margin: 24px; line-height: 1.8; }
    header { margin-bottom: 16px; }
    .muted { color: #666; font-size: 0.95rem; }
    .grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));
      gap: 16px;
    }
    .card {
      border: 1px solid #ddd;
      border-radius: 12px;
      padding: 12px;
      background: #fff;
    }
    img { width: 100%; height: auto; border-radius: 10px; }
    figcaption { margin-top: 10px; color: #333; font-size: 0.95rem; min-height: 1.2em; }
  </style>
</head>
<body>
  <header>
    <h1>گزارش: {{.Title}}</h1>
    <p class="muted">تعداد تصاویر: {{.ImageCount}}</p>
  </header>

  <main class="grid">
{{- range .Cards}}
    <figure class="card">
      <a href="{{.Href}}" target="_blank" rel="noopener">
        <img src="{{.Href}}" alt="{{.Name}}">
      </a>
      <figcaption>{{.Caption}}</figcaption>
    </figure>
{{- end}}
  </main>
</body>
</html>
`))

// RenderReportPage builds the self-contained report document for one folder.
// Images keep their lister order; captions are looked up by exact filename
// and default to the empty string. Hrefs are percent-encoded per segment,
// everything else is entity-escaped by the template.
func RenderReportPage(title string, images []string, captions map[string]string) ([]byte, error) {
	page := reportPage{
		Title:      title,
		ImageCount: len(images),
		Cards:      make([]card, 0, len(images)),
	}
	for _, img := range images {
		page.Cards = append(page.Cards, card{
			Name:    img,
			Href:    template.URL(paths.URLPath(img)),
			Caption: captions[img],
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
