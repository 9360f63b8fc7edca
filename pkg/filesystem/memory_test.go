package filesystem

import (
	"testing"
	"time"
)

func TestMemorySourceWalkAndTransfer(t *testing.T) {
	reg := NewMemoryRegistry()
	left := NewMemorySource(reg)
	right := NewMemorySource(reg)

	left.Set("a.txt", []byte("hello"), time.Unix(100, 0))

	entries, err := left.Walk()
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "a.txt" {
		t.Fatalf("Walk = %v, want one entry for a.txt", entries)
	}

	localName, err := left.GetLocalName("a.txt")
	if err != nil {
		t.Fatalf("GetLocalName: %v", err)
	}
	if err := right.CopyTo(localName, "a.txt"); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	data, err := right.ReadMemory("a.txt")
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadMemory = %q, want %q", data, "hello")
	}
}

func TestMemorySourceDeleteAndRename(t *testing.T) {
	src := NewMemorySource(NewMemoryRegistry())
	src.Set("a.txt", []byte("x"), time.Unix(1, 0))

	if err := src.Rename("a.txt", "b.txt"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if exists, _ := src.Exists("a.txt"); exists {
		t.Error("a.txt still exists after rename")
	}
	if exists, _ := src.Exists("b.txt"); !exists {
		t.Error("b.txt does not exist after rename")
	}

	if err := src.Delete("b.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if exists, _ := src.Exists("b.txt"); exists {
		t.Error("b.txt still exists after delete")
	}
	if err := src.Delete("b.txt"); err != nil {
		t.Errorf("Delete on missing path returned error: %v", err)
	}
}
