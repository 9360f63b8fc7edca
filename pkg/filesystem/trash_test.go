package filesystem

import (
	"testing"
	"time"

	"github.com/nicolas-van/bisync/pkg/core"
)

func TestTrashSourceDeleteReroutesIntoTrashFolder(t *testing.T) {
	reg := NewMemoryRegistry()
	inner := NewMemorySource(reg)
	inner.Set("a.txt", []byte("x"), time.Unix(1, 0))

	trash := NewTrashSource(inner)
	if err := trash.Delete("a.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if exists, _ := inner.Exists("a.txt"); exists {
		t.Error("a.txt still present at its original path")
	}
	if exists, _ := inner.Exists(core.TrashFolder + "/a.txt"); !exists {
		t.Error("a.txt was not moved into the trash folder")
	}
}
