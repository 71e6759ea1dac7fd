// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abreport

import (
	"html/template"
	"io"
	"strings"
)

var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`
<table class='abtest'>
<caption>{{.Title}}</caption>
<tr><th><th>conversions<th>impressions<th>rate<th>lift<th>z<th>p<th>
{{range .Rows -}}
{{if .Comparison -}}
<tr class='{{if .Best}}best{{else if .Comparison.Significant}}significant{{else}}unchanged{{end}}'>
{{- else -}}
<tr class='control'>
{{- end -}}
<td>{{.Label}}<td>{{.Conversions}}<td>{{.Impressions}}<td>{{pct .Rate}}
{{- with .Comparison}}<td class='{{if eq .FormatLift "~"}}nolift{{else}}lift{{end}}'>{{replace .FormatLift "-" "−" -1}}<td>{{printf "%.2f" .Z}}<td>{{printf "%.3f" .P}}{{else}}<td><td><td>{{end}}<td class='note'>{{.Verdict}}
{{end -}}
</table>
{{range .Rows}}{{$label := .Label}}{{with .Comparison}}{{range .Warnings}}<p class='warning'>{{$label}}: {{.}}</p>
{{end}}{{end}}{{end}}`))

var htmlFuncs = template.FuncMap{
	"pct":     func(x float64) string { return formatPct(x, 2) },
	"replace": strings.Replace,
}

// ToHTML writes an HTML table rendering of t to w.
func (t *Table) ToHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, t)
}
