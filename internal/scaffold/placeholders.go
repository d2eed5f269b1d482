package scaffold

import "strings"

// Placeholder is a literal token and its replacement.
type Placeholder struct {
	Token string
	Value string
}

// PlaceholderMap is an ordered token -> value mapping with unique tokens.
// It is built fresh for every render.
type PlaceholderMap struct {
	entries []Placeholder
	index   map[string]int
}

// NewPlaceholderMap creates an empty PlaceholderMap.
func NewPlaceholderMap() *PlaceholderMap {
	return &PlaceholderMap{index: make(map[string]int)}
}

// Token returns the stub token for a placeholder name: "model" -> "{{ model }}".
func Token(name string) string {
	return "{{ " + name + " }}"
}

// Set maps token to value. Setting an existing token replaces its value in place.
func (m *PlaceholderMap) Set(token, value string) *PlaceholderMap {
	if i, ok := m.index[token]; ok {
		m.entries[i].Value = value
		return m
	}
	m.index[token] = len(m.entries)
	m.entries = append(m.entries, Placeholder{Token: token, Value: value})
	return m
}

// get returns the value mapped to token.
func (m *PlaceholderMap) get(token string) (string, bool) {
	i, ok := m.index[token]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Merge sets every entry of other on m, in other's order.
func (m *PlaceholderMap) Merge(other *PlaceholderMap) *PlaceholderMap {
	if other == nil {
		return m
	}
	for _, p := range other.entries {
		m.Set(p.Token, p.Value)
	}
	return m
}

// Len returns the number of tokens.
func (m *PlaceholderMap) Len() int {
	return len(m.entries)
}

// Entries returns the placeholders in insertion order.
func (m *PlaceholderMap) Entries() []Placeholder {
	out := make([]Placeholder, len(m.entries))
	copy(out, m.entries)
	return out
}

// Render replaces every occurrence of each token in stub with its value.
// Replacement is a single pass: values are never scanned for tokens, and
// tokens missing from the map are left in the output verbatim.
func Render(stub string, m *PlaceholderMap) string {
	if m == nil || m.Len() == 0 {
		return stub
	}
	pairs := make([]string, 0, 2*m.Len())
	for _, p := range m.Entries() {
		pairs = append(pairs, p.Token, p.Value)
	}
	return strings.NewReplacer(pairs...).Replace(stub)
}
