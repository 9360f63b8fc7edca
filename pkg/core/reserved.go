package core

import "strings"

const (
	// MetadataFolder is the reserved top-level folder, present in every
	// replica, that holds the persisted index.
	MetadataFolder = ".bisync"
	// IndexFileName is the name of the persisted index file within
	// MetadataFolder.
	IndexFileName = "index"
	// StagingSuffix is the reserved filename suffix appended to a path
	// during a two-phase copy or index write.
	StagingSuffix = "~bisync"
	// TrashFolder is the reserved top-level folder used by an external trash
	// policy in place of outright deletion.
	TrashFolder = "bisync_trash"
)

// IndexPath is the reserved in-tree path of the persisted index,
// MetadataFolder + "/" + IndexFileName.
var IndexPath = MetadataFolder + "/" + IndexFileName

// IsReserved reports whether path falls under one of the reserved
// exclusions from spec section 3.5: the metadata folder, a staging-suffixed
// path, or the trash folder. Reserved paths are never tracked by an index,
// whether encountered during a live walk or while loading a persisted index.
func IsReserved(path string) bool {
	if path == MetadataFolder || strings.HasPrefix(path, MetadataFolder+"/") {
		return true
	}
	if strings.HasSuffix(path, StagingSuffix) {
		return true
	}
	if path == TrashFolder || strings.HasPrefix(path, TrashFolder+"/") {
		return true
	}
	return false
}
