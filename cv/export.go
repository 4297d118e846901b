package cv

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

// Document is the printable CV page.
var Document = template.Must(template.New("cv").Parse(documentHTML))

// Render writes c as a standalone HTML document.
func Render(w io.Writer, c CV) error {
	return Document.Execute(w, c)
}

// Export renders c into the file at path, creating parent directories.
func Export(path string, c CV) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Render(f, c); err != nil {
		return fmt.Errorf("render cv: %w", err)
	}
	return nil
}

const documentHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Profile.FullName}} - CV</title>
<style>
@media print { body { margin: 0; } }
body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
.header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #007AFF; }
.header h1 { margin: 0 0 5px 0; color: #1a1a1a; font-size: 32px; }
.header p { margin: 5px 0; color: #666; font-size: 16px; }
.contact-info { display: flex; justify-content: center; flex-wrap: wrap; gap: 15px; }
.contact-info span { color: #666; font-size: 14px; }
.section { margin-bottom: 30px; }
.section-title { font-size: 24px; color: #007AFF; margin-bottom: 15px; padding-bottom: 5px; border-bottom: 2px solid #007AFF; }
.entry { margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid #e0e0e0; }
.entry h3 { margin: 0 0 5px 0; color: #1a1a1a; }
.entry .org { margin: 0 0 5px 0; color: #666; font-weight: 600; }
.entry .dates { margin: 0 0 10px 0; color: #999; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Profile.FullName}}</h1>
  <p>{{.Profile.JobTitle}}</p>
  <div class="contact-info">
    <span>{{.Profile.Email}}</span>
    <span>{{.Profile.Phone}}</span>
    <span>{{.Profile.Location}}</span>
  </div>
</div>
<div class="section">
  <h2 class="section-title">Profile</h2>
  <p>{{.Profile.Summary}}</p>
</div>
<div class="section">
  <h2 class="section-title">Experience</h2>
  {{- range .Experience}}
  <div class="entry">
    <h3>{{.JobTitle}}</h3>
    <p class="org">{{.Company}}</p>
    <p class="dates">{{.DateRange}}</p>
    <ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{- end}}
</div>
<div class="section">
  <h2 class="section-title">Education</h2>
  {{- range .Education}}
  <div class="entry">
    <h3>{{.Degree}}</h3>
    <p class="org">{{.Institution}}</p>
    <p class="dates">{{.DateRange}}</p>
  </div>
  {{- end}}
</div>
</body>
</html>
`
