package filesystem

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nicolas-van/bisync/pkg/core"
)

// NewExcludeFunc compiles a set of doublestar glob patterns (as accepted by
// the --exclude flag, e.g. "*.tmp" or "**/node_modules/**") into a
// core.ExcludeFunc that reports whether a given index path matches any of
// them.
func NewExcludeFunc(patterns []string) (core.ExcludeFunc, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
		compiled = append(compiled, pattern)
	}
	return func(path string) bool {
		for _, pattern := range compiled {
			if matched, _ := doublestar.Match(pattern, path); matched {
				return true
			}
		}
		return false
	}, nil
}
