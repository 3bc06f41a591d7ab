package version

import (
	"bytes"
	"encoding/json"
	"go/format"
	"go/token"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/gitver/pkg"
)

// Lang identifies the language of the generated file.
type Lang string

const (
	LangGo   Lang = "go"
	LangRust Lang = "rust"
	LangYAML Lang = "yaml"
	LangJSON Lang = "json"
)

// DefaultLang is the language generated unless another is requested.
const DefaultLang = LangGo

// DefaultPackage is the Go package clause used when none is known.
const DefaultPackage = "main"

// extension maps each supported Lang to its file name extension.
var extension = map[Lang]string{
	LangGo:   ".go",
	LangRust: ".rs",
	LangYAML: ".yaml",
	LangJSON: ".json",
}

// Langs returns the names of all supported languages, sorted.
func Langs() []string {
	names := make([]string, 0, len(extension))
	for l := range extension {
		names = append(names, string(l))
	}

	slices.Sort(names)

	return names
}

// ParseLang returns the Lang named by s, ignoring case.
func ParseLang(s string) (Lang, error) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := extension[l]; !ok {
		return "", errInvalidLang(s)
	}

	return l, nil
}

func errInvalidLang(s string) error {
	return pkg.ErrInvalidFormat.Wrapf(
		"language %q (expected one of: %s)", s, strings.Join(Langs(), ", "))
}

// Ext returns the file name extension, including the leading dot, for l.
func (l Lang) Ext() string { return extension[l] }

// Identifiers of the generated declarations.
const (
	GoConstName   = "GitBuildVersion"
	RustConstName = "GIT_BUILD_VERSION"
	DataKey       = "git_build_version"
)

// Renderer maps a Descriptor to the content of the generated file.
//
// Rendering is deterministic: equal descriptors always render to identical
// bytes and distinct descriptors never do, which is what makes comparing
// against the existing file a valid freshness check.
type Renderer struct {
	Lang Lang
	// Package is the package clause of generated Go source.
	Package string
}

// Render returns the file content declaring d.
func (r Renderer) Render(d Descriptor) ([]byte, error) {
	switch r.Lang {
	case LangGo, "":
		return r.renderGo(d)
	case LangRust:
		return renderRust(d), nil
	case LangYAML:
		return renderYAML(d)
	case LangJSON:
		return renderJSON(d)
	default:
		return nil, errInvalidLang(string(r.Lang))
	}
}

var goSource = template.Must(template.New("go").Parse(
	`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

// {{.Name}} is the output of "git describe --tags --always" at generation
// time. {{.Name}}OK reports whether it was available.
const {{.Name}}, {{.Name}}OK = {{printf "%q" .Value}}, {{.OK}}
`))

// Validate reports whether r can render at all, independent of any
// Descriptor: its Lang must be supported and, for Go, its Package must be a
// valid identifier.
func (r Renderer) Validate() error {
	switch r.Lang {
	case LangGo, "":
		name := r.packageName()
		if !token.IsIdentifier(name) {
			return pkg.ErrInvalidFormat.Wrapf("invalid Go package name %q", name)
		}

		return nil
	default:
		if r.Lang.Ext() == "" {
			return errInvalidLang(string(r.Lang))
		}

		return nil
	}
}

func (r Renderer) packageName() string {
	if r.Package == "" {
		return DefaultPackage
	}

	return r.Package
}

func (r Renderer) renderGo(d Descriptor) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	name := r.packageName()

	var buf bytes.Buffer

	err := goSource.Execute(&buf, struct {
		Generator, Package, Name, Value string
		OK                              bool
	}{pkg.Name, name, GoConstName, d.Value, d.OK})
	if err != nil {
		return nil, pkg.ErrFormatSource.Wrap(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, pkg.ErrFormatSource.Wrap(err)
	}

	return src, nil
}

func renderRust(d Descriptor) []byte {
	var sb strings.Builder

	sb.WriteString("static " + RustConstName + ": Option<&'static str> = ")

	if d.OK {
		sb.WriteString("Some(\"")
		sb.WriteString(escapeRust(d.Value))
		sb.WriteString("\")")
	} else {
		sb.WriteString("None")
	}

	sb.WriteString(";\n")

	return []byte(sb.String())
}

// escapeRust escapes s for use inside a Rust string literal.
func escapeRust(s string) string {
	var sb strings.Builder

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				sb.WriteString(`\u{` + strconv.FormatInt(int64(r), 16) + `}`)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	return sb.String()
}

// dataValue is the value stored under DataKey: a string, or nil if absent.
func dataValue(d Descriptor) any {
	if !d.OK {
		return nil
	}

	return d.Value
}

func renderYAML(d Descriptor) ([]byte, error) {
	out, err := yaml.Marshal(yaml.MapSlice{{Key: DataKey, Value: dataValue(d)}})
	if err != nil {
		return nil, pkg.ErrYAMLMarshal.Wrap(err)
	}

	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

func renderJSON(d Descriptor) ([]byte, error) {
	out, err := json.MarshalIndent(map[string]any{DataKey: dataValue(d)}, "", "  ")
	if err != nil {
		return nil, pkg.ErrJSONMarshal.Wrap(err)
	}

	return append(out, '\n'), nil
}
