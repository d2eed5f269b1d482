// Package php extracts class headers from PHP source files.
//
// Only the parts needed to recognise Eloquent models are understood: the
// namespace declaration, top-level use imports, class declarations with their
// modifiers and parent class, and a `$table` property. Everything else is
// consumed token by token and ignored.
package php

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// sourceFile is the root of the grammar.
type sourceFile struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Namespace *string        `parser:"  'namespace' @Name ';'"`
	Use       *useClause     `parser:"| @@"`
	Class     *classDecl     `parser:"| @@"`
	Table     *tableProperty `parser:"| @@"`
	Other     bool           `parser:"| @(Name | GroupPrefix | Variable | String | Number | Punct)"`
}

// useClause is a single import or a group import such as
// `use Illuminate\Database\Eloquent\{Model, Builder};`.
type useClause struct {
	Group *useGroup `parser:"'use' ( @@"`
	Item  *useItem  `parser:"        | @@ ) ';'"`
}

type useGroup struct {
	Prefix string     `parser:"@GroupPrefix"`
	Items  []*useItem `parser:"@@ (',' @@)* ','? '}'"`
}

type useItem struct {
	Path  string `parser:"@Name"`
	Alias string `parser:"('as' @Name)?"`
}

// tableProperty is a `$table` property declaration. Assignments to a local
// $table variable have no modifier and never match.
type tableProperty struct {
	Modifiers []string `parser:"@('public' | 'protected' | 'private' | 'var' | 'static' | 'readonly')+"`
	Type      string   `parser:"@'?'? @Name?"`
	Value     string   `parser:"'$table' '=' @String"`
}

type classDecl struct {
	Modifiers  []string `parser:"@('abstract' | 'final' | 'readonly')*"`
	Name       string   `parser:"'class' @Name"`
	Extends    string   `parser:"('extends' @Name)?"`
	Implements []string `parser:"('implements' @Name (',' @Name)*)?"`
}

// File is the parsed header information of one PHP file.
type File struct {
	Namespace string
	Imports   map[string]string // alias -> fully-qualified name
	Classes   []Class
}

// Class is a class declaration found in a PHP file.
type Class struct {
	Name       string
	FQCN       string
	Parent     string // fully-qualified parent class, empty when none
	Abstract   bool
	Table      string // value of a declared $table property
	Implements []string
}

func (u *useClause) addTo(imports map[string]string) {
	if u.Item != nil {
		u.Item.addTo(imports, "")
		return
	}
	prefix := strings.TrimRight(u.Group.Prefix, "{ \t\r\n")
	prefix = strings.TrimSuffix(prefix, `\`)
	for _, item := range u.Group.Items {
		item.addTo(imports, prefix)
	}
}

func (u *useItem) addTo(imports map[string]string, prefix string) {
	path := strings.TrimPrefix(u.Path, `\`)
	if prefix != "" {
		path = joinName(strings.TrimPrefix(prefix, `\`), path)
	}
	alias := u.Alias
	if alias == "" {
		alias = lastSegment(path)
	}
	imports[alias] = path
}

// Parser parses PHP class headers.
type Parser struct {
	parser *participle.Parser[sourceFile]
}

// NewParser creates a new PHP header parser.
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/|//[^\n]*|#[^\n]*`},
		{Name: "String", Pattern: `'(?:\\.|[^'\\])*'|"(?:\\.|[^"\\])*"`},
		{Name: "Variable", Pattern: `\$[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "GroupPrefix", Pattern: `\\?[a-zA-Z_][a-zA-Z0-9_]*(?:\\[a-zA-Z_][a-zA-Z0-9_]*)*\\\s*\{`},
		{Name: "Name", Pattern: `\\?[a-zA-Z_][a-zA-Z0-9_]*(?:\\[a-zA-Z_][a-zA-Z0-9_]*)*`},
		{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Punct", Pattern: `.`},
	})

	parser := participle.MustBuild[sourceFile](
		participle.Lexer(lex),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(8),
	)

	return &Parser{parser: parser}
}

// Parse parses the class headers of a PHP source file.
func (p *Parser) Parse(filename string, src []byte) (*File, error) {
	ast, err := p.parser.ParseBytes(filename, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	file := &File{Imports: make(map[string]string)}
	current := -1

	for _, it := range ast.Items {
		switch {
		case it.Namespace != nil:
			file.Namespace = strings.TrimPrefix(*it.Namespace, `\`)
		case it.Use != nil:
			// Imports inside a class body are trait uses.
			if current >= 0 {
				continue
			}
			it.Use.addTo(file.Imports)
		case it.Class != nil:
			if isReserved(it.Class.Name) {
				continue
			}
			file.Classes = append(file.Classes, Class{
				Name:       it.Class.Name,
				Parent:     it.Class.Extends,
				Abstract:   contains(it.Class.Modifiers, "abstract"),
				Implements: it.Class.Implements,
			})
			current = len(file.Classes) - 1
		case it.Table != nil:
			if current >= 0 && file.Classes[current].Table == "" {
				file.Classes[current].Table = unquote(it.Table.Value)
			}
		}
	}

	// Names are resolved once all imports are known.
	for i := range file.Classes {
		c := &file.Classes[i]
		c.FQCN = joinName(file.Namespace, c.Name)
		if c.Parent != "" {
			c.Parent = file.Resolve(c.Parent)
		}
		for j, iface := range c.Implements {
			c.Implements[j] = file.Resolve(iface)
		}
	}

	return file, nil
}

// Resolve turns a class name as written in the file into a fully-qualified name
// using PHP's resolution rules for the file's namespace and imports.
func (f *File) Resolve(name string) string {
	if strings.HasPrefix(name, `\`) {
		return strings.TrimPrefix(name, `\`)
	}

	first, rest, qualified := strings.Cut(name, `\`)
	if target, ok := f.Imports[first]; ok {
		if qualified {
			return target + `\` + rest
		}
		return target
	}

	return joinName(f.Namespace, name)
}

func joinName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + `\` + name
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// isReserved filters keywords captured as class names, e.g. `new class extends Foo`.
func isReserved(name string) bool {
	switch strings.ToLower(name) {
	case "extends", "implements":
		return true
	}
	return false
}
