package filesystem

import "testing"

func TestNewExcludeFuncNilForEmpty(t *testing.T) {
	exclude, err := NewExcludeFunc(nil)
	if err != nil {
		t.Fatalf("NewExcludeFunc: %v", err)
	}
	if exclude != nil {
		t.Error("NewExcludeFunc(nil) should return a nil ExcludeFunc")
	}
}

func TestNewExcludeFuncMatches(t *testing.T) {
	exclude, err := NewExcludeFunc([]string{"*.tmp", "**/node_modules/**"})
	if err != nil {
		t.Fatalf("NewExcludeFunc: %v", err)
	}
	cases := []struct {
		path string
		want bool
	}{
		{"a.tmp", true},
		{"dir/a.tmp", false},
		{"dir/node_modules/pkg/index.js", true},
		{"a.txt", false},
	}
	for _, c := range cases {
		if got := exclude(c.path); got != c.want {
			t.Errorf("exclude(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestNewExcludeFuncRejectsInvalidPattern(t *testing.T) {
	if _, err := NewExcludeFunc([]string{"["}); err == nil {
		t.Error("expected an error for an invalid glob pattern")
	}
}
