package scaffold

import (
	"regexp"
	"strings"
	"unicode"
)

// Name transformation helpers

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(strings.ToLower(word))
	}
	return strings.Join(words, "")
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// LowerFirst returns the string with the first letter lowercased, leaving the rest untouched.
// e.g. "PostRepository" -> "postRepository"
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	// Replace common separators with space
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(s[i-1])
			if !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	// Split and filter empty strings
	parts := strings.Fields(result.String())
	return parts
}

var irregularPlurals = map[string]string{
	"child":  "children",
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"mouse":  "mice",
	"goose":  "geese",
	"tooth":  "teeth",
	"foot":   "feet",
}

var uncountable = map[string]bool{
	"equipment":   true,
	"information": true,
	"media":       true,
	"metadata":    true,
	"news":        true,
	"series":      true,
	"species":     true,
}

// Pluralize returns a simple pluralized form of a lowercase word.
// Only the last word of a snake_case or kebab-case string is pluralized.
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	prefix, word := "", s
	if i := strings.LastIndexAny(s, "_-"); i >= 0 {
		prefix, word = s[:i+1], s[i+1:]
	}
	if uncountable[word] {
		return s
	}
	if plural, ok := irregularPlurals[word]; ok {
		return prefix + plural
	}

	// Simple pluralization rules
	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") ||
		strings.HasSuffix(s, "ch") || strings.HasSuffix(s, "sh") {
		return s + "es"
	}
	if strings.HasSuffix(s, "y") && len(s) > 1 {
		lastChar := s[len(s)-2]
		if lastChar != 'a' && lastChar != 'e' && lastChar != 'i' && lastChar != 'o' && lastChar != 'u' {
			return s[:len(s)-1] + "ies"
		}
	}
	return s + "s"
}

// TableName returns the conventional Eloquent table name for a model class.
// e.g. "BlogPost" -> "blog_posts", "HTTPLog" -> "h_t_t_p_logs"
func TableName(className string) string {
	return Pluralize(tableSnake(className))
}

// tableSnake puts an underscore before every uppercase letter except the
// first, so acronyms are split letter by letter.
func tableSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

var lengthPattern = regexp.MustCompile(`\((\d+)\)`)

// columnLength extracts the declared length of a column type: "varchar(120)" -> "120".
func columnLength(columnType string) string {
	if m := lengthPattern.FindStringSubmatch(columnType); m != nil {
		return m[1]
	}
	return ""
}
