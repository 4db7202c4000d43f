package display

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultBanner is the welcome screen shown to every new connection when
// no banner template is configured.
const DefaultBanner = "\n" +
	"  ****************************** \n" +
	" *                              * \n" +
	"*  Welcome to the Fantasy World  *\n" +
	" *                              * \n" +
	"  ****************************** \n\n\n"

// templateFuncs provides utility functions for banner templates.
var templateFuncs = sprig.TxtFuncMap()

// BannerData is what a banner template is executed against.
type BannerData struct {
	ServerName string
}

// RenderBanner expands a banner template using sprig's function map.
func RenderBanner(tmplStr string, data BannerData) (string, error) {
	tmpl, err := template.New("banner").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing banner template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing banner template: %w", err)
	}

	return buf.String(), nil
}
