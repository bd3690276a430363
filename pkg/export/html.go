package export

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/matzehuels/careermap/pkg/errors"
)

const (
	dateLayout = "1/2/2006"
	timeLayout = "3:04:05 PM"
)

var page = template.Must(template.New("export").Funcs(template.FuncMap{
	"join": func(s []string) string { return strings.Join(s, ", ") },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="margin: 0; background: white;">
<div style="font-family: Arial, sans-serif; padding: 20px; background: white; color: black; line-height: 1.6;">
<h1 style="text-align: center; color: #000; margin-bottom: 20px; font-size: 28px;">{{.Title}}</h1>
<p style="text-align: center; color: #666; font-style: italic; margin-bottom: 40px; font-size: 16px;">{{.Subtitle}}</p>
<h2 style="color: #000; border-bottom: 3px solid #333; padding-bottom: 10px; margin: 40px 0 20px 0; font-size: 22px;">Required Skills</h2>
{{- range .Skills}}
<div style="margin: 10px 0; padding: 12px; background: #f8f8f8; border-left: 4px solid #333; border-radius: 4px;">
<h4 style="margin: 0 0 5px 0; color: #000; font-size: 16px;">{{.Number}}. {{.Name}}</h4>
{{- if .Prerequisites}}
<p style="margin: 0; color: #666; font-size: 14px;">Prerequisites: {{join .Prerequisites}}</p>
{{- end}}
</div>
{{- else}}
<p style="color: #666; font-size: 16px;">` + NoSkills + `</p>
{{- end}}
<h2 style="color: #000; border-bottom: 3px solid #333; padding-bottom: 10px; margin: 40px 0 20px 0; font-size: 22px;">Career Progression Path</h2>
{{- range .Stages}}
<div style="margin: 15px 0; padding: 15px; background: #f0f0f0; border-radius: 8px; border-left: 4px solid #333;">
<h4 style="margin: 0 0 8px 0; color: #000; font-size: 18px;">{{.Number}}. {{.Name}}</h4>
<p style="margin: 0; color: #555; font-size: 14px;">{{.Description}}</p>
</div>
{{- else}}
<p style="color: #666; font-size: 16px;">` + NoProgression + `</p>
{{- end}}
{{- if .Courses}}
<h2 style="color: #000; border-bottom: 3px solid #333; padding-bottom: 10px; margin: 40px 0 20px 0; font-size: 22px;">Recommended Learning Resources</h2>
{{- range .Courses}}
<div style="margin: 15px 0; padding: 15px; background: #f5f5f5; border-radius: 8px;">
<h4 style="margin: 0 0 10px 0; color: #000; font-size: 16px;">{{.Skill}}</h4>
{{- range .Courses}}
<p style="margin: 5px 0; font-size: 14px; color: #333;">• {{.Title}} ({{.Platform}})</p>
{{- end}}
</div>
{{- end}}
{{- end}}
<div style="margin-top: 50px; padding-top: 20px; border-top: 2px solid #ddd; text-align: center;">
<p style="font-size: 12px; color: #999; font-style: italic;">Generated on {{.Date}} at {{.Time}}</p>
</div>
</div>
</body>
</html>
`))

type pageData struct {
	Document
	Date string
	Time string
}

// Render produces the HTML page for doc. All roadmap text is escaped.
func Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	data := pageData{
		Document: doc,
		Date:     doc.GeneratedAt.Format(dateLayout),
		Time:     doc.GeneratedAt.Format(timeLayout),
	}
	if err := page.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "render export document")
	}
	return buf.Bytes(), nil
}
