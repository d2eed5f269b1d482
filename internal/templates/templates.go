// Package templates embeds the default stub files used for code generation.
package templates

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed stubs/*.stub
var stubFiles embed.FS

// StubExt is the file extension of stub templates.
const StubExt = ".stub"

// GetStub returns the content of an embedded stub, e.g. GetStub("repository").
func GetStub(name string) (string, error) {
	content, err := stubFiles.ReadFile("stubs/" + name + StubExt)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// StubNames returns the names of all embedded stubs, sorted.
func StubNames() ([]string, error) {
	entries, err := fs.ReadDir(stubFiles, "stubs")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), StubExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), StubExt))
	}
	sort.Strings(names)
	return names, nil
}
