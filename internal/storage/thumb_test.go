package storage

import "testing"

func TestThumbKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want string
	}{
		{"venice.jpg", "venice_thumb.jpg"},
		{"venice.harbor.jpg", "venice.harbor_thumb.jpg"},
		{"scan", "scan_thumb"},
		{"img_001.webp", "img_001_thumb.webp"},
	}
	for _, tc := range cases {
		if got := ThumbKey(tc.key); got != tc.want {
			t.Errorf("ThumbKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestIsThumbKey(t *testing.T) {
	t.Parallel()

	yes := []string{"venice_thumb.jpg", "scan_thumb", "a.b_thumb.png"}
	no := []string{"venice.jpg", "thumbnail.jpg", "venice_thumb.jpg.bak"}

	for _, key := range yes {
		if !IsThumbKey(key) {
			t.Errorf("IsThumbKey(%q) = false, want true", key)
		}
	}
	for _, key := range no {
		if IsThumbKey(key) {
			t.Errorf("IsThumbKey(%q) = true, want false", key)
		}
	}
}

func TestOriginalKeyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"venice.jpg", "scan", "a.b.c.png"} {
		if got := OriginalKey(ThumbKey(key)); got != key {
			t.Errorf("OriginalKey(ThumbKey(%q)) = %q", key, got)
		}
	}

	if got := OriginalKey("plain.jpg"); got != "plain.jpg" {
		t.Errorf("OriginalKey of non-thumb changed the key: %q", got)
	}
}
