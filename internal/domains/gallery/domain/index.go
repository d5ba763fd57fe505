package domain

import (
	"bytes"
	"html/template"
	"sort"
	"strings"

	"github.com/imgreport/imgreport/internal/platform/paths"
)

// IndexEntry is one report folder as listed on an index page.
type IndexEntry struct {
	// RelPath is the folder's path relative to the outputs root,
	// posix-style, in plain (unencoded) form for display.
	RelPath string
	// ReportRel is the report page path relative to the outputs root.
	ReportRel  string
	ImageCount int
}

type indexItem struct {
	Href       template.URL
	Label      string
	ImageCount int
}

type indexPage struct {
	Items []indexItem
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="fa" dir="rtl">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>فهرست گزارش‌ها</title>
  <style>
    body { font-family: sans-serif; margin: 24px; line-height: 1.8; }
    .muted { color: #666; font-size: 0.95rem; }
    ul { padding-right: 18px; }
    li { margin: 8px 0; }
  </style>
</head>
<body>
  <h1>فهرست گزارش‌ها</h1>
  <p class="muted">روی هر مورد کلیک کن تا گزارش همان فولدر باز شود.</p>
  <ul>
{{- if .Items}}
{{- range .Items}}
    <li><a href="{{.Href}}">{{.Label}}</a> <span class="muted">({{.ImageCount}} تصویر)</span></li>
{{- end}}
{{- else}}
    <li>گزارشی پیدا نشد.</li>
{{- end}}
  </ul>
</body>
</html>
`))

// SortEntries orders entries case-insensitively by relative path.
// The sort is stable so equal-fold ties keep their path-sorted order.
func SortEntries(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].RelPath) < strings.ToLower(entries[j].RelPath)
	})
}

// RenderIndexPage builds one index document. prefix is the link prefix to
// the outputs directory as seen from where the index lives ("outputs" or
// "../outputs"); it is split into segments and encoded with the same rule
// as the report paths.
func RenderIndexPage(prefix string, entries []IndexEntry) ([]byte, error) {
	page := indexPage{Items: make([]indexItem, 0, len(entries))}
	for _, e := range entries {
		parts := strings.Split(prefix, "/")
		parts = append(parts, strings.Split(e.ReportRel, "/")...)
		page.Items = append(page.Items, indexItem{
			Href:       template.URL(paths.URLPath(parts...)),
			Label:      e.RelPath,
			ImageCount: e.ImageCount,
		})
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
