package core

import (
	"encoding/json"
	"testing"
)

func TestEntryEqual(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Entry
		equal bool
	}{
		{"both tombstones", NewTombstoneEntry(), NewTombstoneEntry(), true},
		{"identical present", NewPresentEntry(10, 100), NewPresentEntry(10, 100), true},
		{"different size", NewPresentEntry(10, 100), NewPresentEntry(11, 100), false},
		{"different mtime", NewPresentEntry(10, 100), NewPresentEntry(10, 101), false},
		{"present vs tombstone", NewPresentEntry(10, 100), NewTombstoneEntry(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.equal {
				t.Errorf("Equal() = %v, want %v", got, c.equal)
			}
		})
	}
}

func TestEntryJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		e    Entry
		want string
	}{
		{"present", NewPresentEntry(42, 1700000000), `[true,42,1700000000]`},
		{"tombstone", NewTombstoneEntry(), `[false]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.e)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != c.want {
				t.Fatalf("Marshal = %s, want %s", data, c.want)
			}
			var got Entry
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !got.Equal(c.e) {
				t.Fatalf("round trip = %v, want %v", got, c.e)
			}
		})
	}
}

func TestEntryUnmarshalRejectsMalformed(t *testing.T) {
	cases := []string{`[]`, `[true,1]`, `[true,"x",1]`}
	for _, raw := range cases {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", raw)
		}
	}
}

func TestHistoryEnsureValid(t *testing.T) {
	cases := []struct {
		name    string
		h       History
		wantErr bool
	}{
		{"empty", History{}, true},
		{"starts with tombstone", History{NewTombstoneEntry()}, true},
		{"single present", History{NewPresentEntry(1, 1)}, false},
		{"adjacent tombstones", History{NewPresentEntry(1, 1), NewTombstoneEntry(), NewTombstoneEntry()}, true},
		{"adjacent identical present", History{NewPresentEntry(1, 1), NewPresentEntry(1, 1)}, true},
		{"create-delete-recreate", History{NewPresentEntry(1, 1), NewTombstoneEntry(), NewPresentEntry(2, 2)}, false},
		{"size change", History{NewPresentEntry(1, 1), NewPresentEntry(2, 1)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.h.EnsureValid()
			if (err != nil) != c.wantErr {
				t.Errorf("EnsureValid() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestHistoryClone(t *testing.T) {
	h := History{NewPresentEntry(1, 1), NewTombstoneEntry()}
	c := h.Clone()
	c[0] = NewPresentEntry(99, 99)
	if h[0].Equal(c[0]) {
		t.Fatal("Clone shares backing array with original")
	}
}

func TestHistoryJSONRoundTrip(t *testing.T) {
	h := History{NewPresentEntry(1, 1), NewTombstoneEntry(), NewPresentEntry(2, 2)}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got History
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(h) {
		t.Fatalf("round trip = %v, want %v", got, h)
	}
}
