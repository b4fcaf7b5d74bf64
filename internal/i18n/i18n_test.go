package i18n

import "testing"

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load("../../locales", "ko", []string{"ko", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := b.Resolve("ko;q=0.8, en;q=0.9")
	if got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveFallsBack(t *testing.T) {
	b, err := Load("../../locales", "ko", []string{"ko", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, header := range []string{"", "fr-FR, de;q=0.5", ";;;"} {
		if got := b.Resolve(header); got != "ko" {
			t.Fatalf("Resolve(%q) = %s, want ko", header, got)
		}
	}
	if got := b.Resolve("en-US,en;q=0.9"); got != "en" {
		t.Fatalf("expected en for regional tag, got %s", got)
	}
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	b, err := Load("../../locales", "ko", []string{"ko", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.T("en", "blog.read_more"); got != "Read more" {
		t.Fatalf("en read_more = %q", got)
	}
	if got := b.T("ko", "blog.read_more"); got != "더 보기" {
		t.Fatalf("ko read_more = %q", got)
	}
	if got := b.T("fr", "category.hobby"); got != "취미" {
		t.Fatalf("unsupported lang should fall back, got %q", got)
	}
	if got := b.T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should echo, got %q", got)
	}
	if !b.IsSupported("EN") || b.IsSupported("fr") {
		t.Fatalf("unexpected IsSupported results")
	}
}
