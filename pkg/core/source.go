package core

// WalkEntry is a single record yielded by Source.Walk: the relative path of
// a live regular file, its size in bytes, and its modification time in
// seconds since the Unix epoch.
type WalkEntry struct {
	Path  string
	Size  uint64
	Mtime int64
}

// Source is the storage backend abstraction that the index builder and
// reconciler operate against. It corresponds to spec section 6.1. Concrete
// implementations (a local filesystem driver, an in-memory test double, a
// dry-run decorator, a trash-folder decorator) live outside this package;
// core depends only on this interface.
//
// Implementations are not required to be safe for concurrent use: a
// synchronization run is single-threaded per spec section 5.
type Source interface {
	// Walk returns every present regular file in the source. Implementations
	// may include excluded paths (the reserved metadata folder, staging-suffixed
	// paths, the trash folder) in their result; callers are responsible for
	// filtering them out.
	Walk() ([]WalkEntry, error)
	// Exists reports whether a file exists at the given path.
	Exists(path string) (bool, error)
	// ReadMemory returns the full contents of the file at the given path.
	ReadMemory(path string) ([]byte, error)
	// WriteMemory writes content to the file at the given path, implicitly
	// creating any intermediate folders.
	WriteMemory(path string, content []byte) error
	// CopyTo copies an externally-accessible local file onto this source at
	// dest, implicitly creating any intermediate folders, and sets the
	// destination's modification time equal to the local file's.
	CopyTo(localPath, dest string) error
	// Rename renames a file, overwriting dest if it exists, implicitly
	// creating any intermediate folders for dest.
	Rename(from, to string) error
	// Delete removes the file at path. It is a no-op if the file does not
	// exist. After removal, now-empty ancestor folders are also removed.
	Delete(path string) error
	// GetLocalName returns a local filesystem path for the file at path that
	// can be passed as the localPath argument to another Source's CopyTo. It
	// may be a temporary materialization of the content.
	GetLocalName(path string) (string, error)
}
