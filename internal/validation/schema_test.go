package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"reflect"
	"testing"

	"github.com/chen-ziwen/chiko-blog/internal/palette"
)

func validSite() map[string]any {
	return map[string]any{
		"lang":  "zh-CN",
		"title": "Chiko",
		"head":  []any{[]any{"link", map[string]any{"rel": "icon", "href": "/favicon.ico"}}},
		"themeConfig": map[string]any{
			"nav": []any{
				map[string]any{"text": "Home", "link": "/"},
				map[string]any{"text": "Notes", "items": []any{
					map[string]any{"text": "Go", "link": "/notes/go/"},
				}},
			},
			"blog": map[string]any{
				"themeColor": "el-yellow",
				"recommend":  map[string]any{"title": "related", "pageSize": 10},
				"footer":     map[string]any{"copyright": "MIT License | chiko", "version": false},
			},
		},
	}
}

func TestSiteSchemaIsValidJSON(t *testing.T) {
	var schema map[string]any
	if err := json.Unmarshal(SiteSchema(), &schema); err != nil {
		t.Fatalf("embedded schema is not JSON: %v", err)
	}
	if err := CompileSiteSchema(); err != nil {
		t.Fatalf("embedded schema does not compile: %v", err)
	}
}

func TestSiteSchemaThemeColorsMatchPalette(t *testing.T) {
	var schema struct {
		Defs map[string]struct {
			Properties map[string]struct {
				Enum []string `json:"enum"`
			} `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal(SiteSchema(), &schema); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	var enum []string
	for _, def := range schema.Defs {
		if prop, ok := def.Properties["themeColor"]; ok {
			enum = prop.Enum
		}
	}
	if !reflect.DeepEqual(enum, palette.Tokens()) {
		t.Fatalf("expected themeColor enum %v, got %v", palette.Tokens(), enum)
	}
}

func TestValidateSiteAcceptsValidDescriptor(t *testing.T) {
	if err := ValidateSite(validSite()); err != nil {
		t.Fatalf("expected valid site, got %v", err)
	}
}

func TestValidateSiteReportsIssues(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(map[string]any)
		location string
	}{
		{
			name:     "missing title",
			mutate:   func(site map[string]any) { delete(site, "title") },
			location: "",
		},
		{
			name: "branch with link",
			mutate: func(site map[string]any) {
				nav := site["themeConfig"].(map[string]any)["nav"].([]any)
				nav[1].(map[string]any)["link"] = "/notes/"
			},
			location: "/themeConfig/nav/1",
		},
		{
			name: "bad input position",
			mutate: func(site map[string]any) {
				blog := site["themeConfig"].(map[string]any)["blog"].(map[string]any)
				blog["comment"] = map[string]any{
					"repo": "a/b", "repoId": "R", "category": "C", "categoryId": "D",
					"inputPosition": "middle",
				}
			},
			location: "/themeConfig/blog/comment/inputPosition",
		},
		{
			name: "theme color in upper case",
			mutate: func(site map[string]any) {
				blog := site["themeConfig"].(map[string]any)["blog"].(map[string]any)
				blog["themeColor"] = "EL-YELLOW"
			},
			location: "/themeConfig/blog/themeColor",
		},
		{
			name: "head tag without attrs",
			mutate: func(site map[string]any) {
				site["head"] = []any{[]any{"link"}}
			},
			location: "/head/0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			site := validSite()
			tc.mutate(site)
			err := ValidateSite(site)
			if err == nil {
				t.Fatal("expected schema validation error")
			}
			if !errors.Is(err, ErrSchemaValidation) {
				t.Fatalf("expected ErrSchemaValidation, got %v", err)
			}
			issues := Issues(err)
			if len(issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range issues {
				if strings.HasPrefix(issue.Location, tc.location) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected issue under %q, got %+v", tc.location, issues)
			}
		})
	}
}

func TestValidateSiteAcceptsTypedValues(t *testing.T) {
	type site struct {
		Lang        string         `json:"lang"`
		Title       string         `json:"title"`
		ThemeConfig map[string]any `json:"themeConfig"`
	}
	err := ValidateSite(site{Lang: "en", Title: "t", ThemeConfig: map[string]any{}})
	if err != nil {
		t.Fatalf("expected typed value to validate, got %v", err)
	}
}

func TestPayloadValidationErrorFormatting(t *testing.T) {
	err := &PayloadValidationError{Issues: []ValidationIssue{
		{Location: "/title", Message: "missing"},
		{Location: "", Message: "bad root"},
	}}
	if got := err.Error(); got != "#/title: missing; #: bad root" {
		t.Fatalf("unexpected message %q", got)
	}
}
