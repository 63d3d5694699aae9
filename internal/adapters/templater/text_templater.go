package templater

import (
	"strings"
	"text/template"

	"uipcup/internal/ports"
)

type TextTemplater struct{}

func ProvideTextTemplater() ports.Templater {
	return &TextTemplater{}
}

func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	if err := tmpl.Execute(&result, values); err != nil {
		return "", err
	}
	return result.String(), nil
}

var _ ports.Templater = (*TextTemplater)(nil)
