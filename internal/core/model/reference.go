// Package model contains the pure logic for resolving model references.
// This is part of the Functional Core - no I/O, only pure functions.
package model

import "strings"

// NamespaceSeparator separates segments of a PHP namespace.
const NamespaceSeparator = `\`

// Default locations for a stock Laravel application.
const (
	DefaultModelsPath      = "app/Models"
	DefaultModelsNamespace = `App\Models`
)

// Reference is the parsed form of a user-supplied model identifier such as "Blog/Post".
type Reference struct {
	ShortName    string // Final segment, used as the class name: "Post"
	SubPath      string // Leading segments joined with "/": "Blog" (empty at base level)
	SubNamespace string // SubPath in namespace form: "Blog" (empty at base level)
}

// Resolve splits a model identifier on "/" into a Reference.
// No validation of the segments is performed.
func Resolve(identifier string) Reference {
	parts := strings.Split(identifier, "/")
	short := parts[len(parts)-1]
	subPath := strings.Join(parts[:len(parts)-1], "/")

	return Reference{
		ShortName:    short,
		SubPath:      subPath,
		SubNamespace: strings.ReplaceAll(subPath, "/", NamespaceSeparator),
	}
}

// HasSubNamespace reports whether the model lives below the base namespace.
func (r Reference) HasSubNamespace() bool {
	return r.SubNamespace != ""
}

// String returns the slash-delimited identifier the reference was resolved from.
func (r Reference) String() string {
	if !r.HasSubNamespace() {
		return r.ShortName
	}
	return r.SubPath + "/" + r.ShortName
}

// Context carries the models location for one invocation.
// It is built once from config and flags and passed explicitly.
type Context struct {
	ModelsPath      string
	ModelsNamespace string
}

// NewContext returns a Context, falling back to the Laravel defaults for empty values.
func NewContext(path, namespace string) Context {
	if path == "" {
		path = DefaultModelsPath
	}
	if namespace == "" {
		namespace = DefaultModelsNamespace
	}
	return Context{
		ModelsPath:      path,
		ModelsNamespace: strings.TrimSuffix(namespace, NamespaceSeparator),
	}
}

// FullyQualified returns the fully-qualified class name of a referenced model,
// e.g. App\Models\Blog\Post. Every caller needing a model FQCN goes through here.
func (c Context) FullyQualified(ref Reference) string {
	return JoinNamespace(c.ModelsNamespace, ref.SubNamespace, ref.ShortName)
}

// JoinNamespace joins namespace segments with the namespace separator, skipping empty ones.
func JoinNamespace(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, NamespaceSeparator)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, NamespaceSeparator)
}

// LastSegment returns the final segment of a fully-qualified class name.
// e.g. App\Repositories\PostRepository -> PostRepository
func LastSegment(fqcn string) string {
	if i := strings.LastIndex(fqcn, NamespaceSeparator); i >= 0 {
		return fqcn[i+1:]
	}
	return fqcn
}
