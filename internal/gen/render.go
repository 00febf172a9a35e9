// Package gen renders the generated C artifacts. Rendering is pure text
// production: callers hand in a fully computed model and receive bytes, no
// I/O happens here.
package gen

import (
	"bytes"
	"text/template"
)

// Names carries the identifiers spliced into the generated artifacts.
type Names struct {
	EnumTypeName  string
	ToStringFn    string
	HeaderInclude string
	Title         string
	Copyright     string
	SPDX          string
	Brief         string
	Group         string
}

// Domain is the render model for one error domain. Member values are already
// computed; rendering never does arithmetic.
type Domain struct {
	Description string
	Members     []Member
}

// Member is one enum constant line.
type Member struct {
	Name        string
	Value       int
	Description string
}

// The header layout (banner width, blank-line placement, trailing comma on
// every member line) is load-bearing: downstream diffs rely on regeneration
// being byte-identical.
const headerText = `
/*
 * {{.Names.Title}}
 *
 * {{.Names.Copyright}}
 * SPDX-License-Identifier: {{.Names.SPDX}}
 */

#pragma once

#ifdef __cplusplus
extern "C" {
#endif

/**
 * @brief   {{.Names.Brief}}
 *
 * @ingroup {{.Names.Group}}
*/
typedef enum
{
{{- range .Domains}}

    //--------------------------------------------------------------------------
    // {{.Description}}
    //--------------------------------------------------------------------------
{{range .Members}}    {{.Name}} = {{.Value}}, ///< {{.Description}}
{{end}}{{- end}}
}
{{.Names.EnumTypeName}};

#ifdef __cplusplus
}
#endif
`

const sourceText = `
#include "{{.HeaderInclude}}"

const char*
{{.ToStringFn}}(
    {{.EnumTypeName}} err)
{
}`

var (
	headerTmpl = template.Must(template.New("header").Parse(headerText))
	sourceTmpl = template.Must(template.New("source").Parse(sourceText))
)

type headerData struct {
	Names   Names
	Domains []Domain
}

// RenderHeader produces the enum header for the given domains, in input order.
func RenderHeader(names Names, domains []Domain) ([]byte, error) {
	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, headerData{Names: names, Domains: domains}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSourceStub produces the toString source stub. The function body is
// intentionally empty; populating the per-case strings is a separate step
// outside this generator.
func RenderSourceStub(names Names) ([]byte, error) {
	var buf bytes.Buffer
	if err := sourceTmpl.Execute(&buf, names); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
