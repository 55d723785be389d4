package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cldump/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	// base name of the cache snapshot without extension
	Cache string
	// actual snapshot layout, never "auto"
	Format string
	Tabs   int
	RunID  string
}

func buildValues(name config.TemplateFieldName, source string, format config.SnapshotFormat, tabs int, runID string) Values {
	base := filepath.Base(filepath.Clean(source))
	return Values{
		Context: string(name),
		Cache:   strings.TrimSuffix(base, filepath.Ext(base)),
		Format:  format.String(),
		Tabs:    tabs,
		RunID:   runID,
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Option("missingkey=error").Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
