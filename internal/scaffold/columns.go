package scaffold

import (
	"fmt"
	"strings"

	"github.com/example/autocrud/internal/ports/secondary"
)

const (
	arrayIndent    = "            "
	propertyIndent = "        "
)

// managedColumns are filled by Eloquent itself and never accepted as input.
var managedColumns = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"deleted_at":     true,
	"remember_token": true,
}

// inputColumns returns the columns a request may set.
func inputColumns(columns []secondary.ColumnRecord) []secondary.ColumnRecord {
	var out []secondary.ColumnRecord
	for _, c := range columns {
		if !managedColumns[c.Name] {
			out = append(out, c)
		}
	}
	return out
}

// columnKind classifies a database column type.
func columnKind(columnType string) string {
	t := strings.ToLower(columnType)
	switch {
	case t == "tinyint(1)" || strings.HasPrefix(t, "bool"):
		return "boolean"
	case strings.Contains(t, "int") || strings.Contains(t, "serial"):
		return "integer"
	case strings.Contains(t, "decimal") || strings.Contains(t, "numeric") ||
		strings.Contains(t, "float") || strings.Contains(t, "double") || strings.Contains(t, "real"):
		return "numeric"
	case strings.Contains(t, "date") || strings.Contains(t, "time"):
		return "date"
	case strings.Contains(t, "json"):
		return "array"
	case t == "uuid":
		return "uuid"
	default:
		return "string"
	}
}

// validationRules renders the body of a FormRequest rules() array.
func validationRules(columns []secondary.ColumnRecord) string {
	lines := make([]string, 0, len(columns))
	for _, c := range inputColumns(columns) {
		rules := []string{"required"}
		if c.Nullable {
			rules[0] = "nullable"
		}
		kind := columnKind(c.Type)
		rules = append(rules, kind)
		if kind == "string" {
			if n := columnLength(c.Type); n != "" {
				rules = append(rules, "max:"+n)
			}
		}
		lines = append(lines, fmt.Sprintf("%s'%s' => '%s',", arrayIndent, c.Name, strings.Join(rules, "|")))
	}
	return strings.Join(lines, "\n")
}

// resourceFields renders the body of a JsonResource toArray() array.
func resourceFields(columns []secondary.ColumnRecord) string {
	lines := make([]string, 0, len(columns))
	for _, c := range columns {
		lines = append(lines, fmt.Sprintf("%s'%s' => $this->%s,", arrayIndent, c.Name, c.Name))
	}
	return strings.Join(lines, "\n")
}

// phpType maps a column to a PHP property type.
func phpType(c secondary.ColumnRecord) string {
	var t string
	switch columnKind(c.Type) {
	case "boolean":
		t = "bool"
	case "integer":
		t = "int"
	case "numeric":
		t = "float"
	case "array":
		t = "array"
	default:
		t = "string"
	}
	if c.Nullable {
		return "?" + t
	}
	return t
}

// dataProperties renders constructor-promoted properties of a spatie Data object.
func dataProperties(columns []secondary.ColumnRecord) string {
	lines := make([]string, 0, len(columns))
	for _, c := range inputColumns(columns) {
		lines = append(lines, fmt.Sprintf("%spublic %s $%s,", propertyIndent, phpType(c), ToCamelCase(c.Name)))
	}
	return strings.Join(lines, "\n")
}
