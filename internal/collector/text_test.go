package collector

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  a   b \n c ", "a b c"},
		{"", ""},
		{"\t\n ", ""},
		{"百度　新闻", "百度 新闻"},
		{"single", "single"},
	}

	for _, c := range cases {
		if got := cleanText(c.in); got != c.want {
			t.Fatalf("cleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveLink(t *testing.T) {
	const base = "https://news.baidu.com"
	cases := []struct {
		href string
		want string
	}{
		{"/foo", base + "/foo"},
		{"http://example.com/a", "http://example.com/a"},
		{"https://example.com/b", "https://example.com/b"},
	}

	for _, c := range cases {
		if got := resolveLink(base, c.href); got != c.want {
			t.Fatalf("resolveLink(%q) = %q, want %q", c.href, got, c.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	const base = "https://news.baidu.com"
	cases := []struct {
		category string
		want     string
	}{
		{"国内", base + "/guonei"},
		{"科技", base + "/keji"},
		{"财经", base + "/caijing"},
		{"tech", base + "/keji"},
		{"Sports", base + "/tiyu"},
		{DefaultCategory, base},
		{"general", base},
		{"", base},
	}

	for _, c := range cases {
		if got := BuildURL(base, c.category); got != c.want {
			t.Fatalf("BuildURL(%q) = %q, want %q", c.category, got, c.want)
		}
	}
}

func TestBuildURLUnknownCategoryUsesDefault(t *testing.T) {
	const base = "https://news.baidu.com/"
	if got, want := BuildURL(base, "不存在的分类"), BuildURL(base, DefaultCategory); got != want {
		t.Fatalf("unknown category url = %q, want %q", got, want)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := normalizeCategory("  "); got != DefaultCategory {
		t.Fatalf("blank category = %q, want %q", got, DefaultCategory)
	}
	if got := normalizeCategory("Finance"); got != "财经" {
		t.Fatalf("alias Finance = %q, want 财经", got)
	}
	if got := normalizeCategory("其他"); got != "其他" {
		t.Fatalf("unknown category should be kept, got %q", got)
	}
}

func TestCategoriesAreMapped(t *testing.T) {
	for _, c := range Categories() {
		if _, ok := categoryPaths[c]; !ok {
			t.Fatalf("category %q has no path", c)
		}
	}
}
