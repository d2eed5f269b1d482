package model

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		shortName    string
		subPath      string
		subNamespace string
	}{
		{"base level", "Post", "Post", "", ""},
		{"one folder", "Blog/Post", "Post", "Blog", "Blog"},
		{"nested folders", "a/b/C", "C", "a/b", `a\b`},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Resolve(tt.input)
			if ref.ShortName != tt.shortName {
				t.Errorf("ShortName = %q, want %q", ref.ShortName, tt.shortName)
			}
			if ref.SubPath != tt.subPath {
				t.Errorf("SubPath = %q, want %q", ref.SubPath, tt.subPath)
			}
			if ref.SubNamespace != tt.subNamespace {
				t.Errorf("SubNamespace = %q, want %q", ref.SubNamespace, tt.subNamespace)
			}
		})
	}
}

func TestResolve_SubNamespaceTracksSubPath(t *testing.T) {
	for _, id := range []string{"Post", "Blog/Post", "x/y/z/Deep"} {
		ref := Resolve(id)
		if ref.HasSubNamespace() != (ref.SubPath != "") {
			t.Errorf("%s: HasSubNamespace inconsistent with SubPath %q", id, ref.SubPath)
		}
		if ref.String() != id {
			t.Errorf("String() = %q, want %q", ref.String(), id)
		}
	}
}

func TestContext_FullyQualified(t *testing.T) {
	ctx := NewContext("", "")

	tests := []struct {
		input string
		want  string
	}{
		{"Post", `App\Models\Post`},
		{"Blog/Post", `App\Models\Blog\Post`},
		{"a/b/C", `App\Models\a\b\C`},
	}

	for _, tt := range tests {
		if got := ctx.FullyQualified(Resolve(tt.input)); got != tt.want {
			t.Errorf("FullyQualified(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewContext_Overrides(t *testing.T) {
	ctx := NewContext("src/Domain", `Domain\Entities\`)

	if ctx.ModelsPath != "src/Domain" {
		t.Errorf("ModelsPath = %q", ctx.ModelsPath)
	}
	if got := ctx.FullyQualified(Resolve("User")); got != `Domain\Entities\User` {
		t.Errorf("FullyQualified = %q", got)
	}
}

func TestLastSegment(t *testing.T) {
	if got := LastSegment(`App\Repositories\PostRepository`); got != "PostRepository" {
		t.Errorf("LastSegment = %q", got)
	}
	if got := LastSegment("PostRepository"); got != "PostRepository" {
		t.Errorf("LastSegment without namespace = %q", got)
	}
}

func TestJoinNamespace(t *testing.T) {
	if got := JoinNamespace(`App\`, "", `Http\Controllers`, "PostController"); got != `App\Http\Controllers\PostController` {
		t.Errorf("JoinNamespace = %q", got)
	}
}
