package instalens

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"text/template"

	"github.com/Masterminds/sprig"
)

// reportTemplate is the fixed three-section analysis document. Section
// order and labels are part of the output contract.
const reportTemplate = `--- Instagram List Analysis ---

Users you follow who DO NOT follow you back:
{{ if .NotFollowingBack }}- {{ join "\n- " (sortAlpha .NotFollowingBack) }}{{ else }}- None{{ end }}

Users who follow you that you DO NOT follow back:
{{ if .UserNotFollowingBack }}- {{ join "\n- " (sortAlpha .UserNotFollowingBack) }}{{ else }}- None{{ end }}

Mutual followers (you follow each other):
{{ if .Mutual }}- {{ join "\n- " (sortAlpha .Mutual) }}{{ else }}- None{{ end }}

`

// RenderReport renders an analysis into the report document
func RenderReport(a *Analysis) (string, error) {
	t, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("error parsing report template: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := t.Execute(buf, a); err != nil {
		return "", fmt.Errorf("error rendering report: %w", err)
	}

	return buf.String(), nil
}

// WriteReport renders an analysis and writes it to path, overwriting any
// previous report
func WriteReport(path string, a *Analysis) error {
	report, err := RenderReport(a)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, []byte(report), 0644)
}
