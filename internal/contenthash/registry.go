package contenthash

import "fmt"

// DuplicateError reports a digest registered more than once.
type DuplicateError struct {
	Digest       string
	Path         string
	OriginalPath string
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate question: %s has the same text as %s", err.Path, err.OriginalPath)
}

// Registry maps digests to the path that first registered them.
// It is owned by a single run and is not safe for concurrent use.
type Registry struct {
	paths map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: map[string]string{}}
}

// Register records digest for path. Any repeated digest is an error,
// including one repeated under the same path.
func (r *Registry) Register(digest, path string) error {
	if original, ok := r.paths[digest]; ok {
		return &DuplicateError{Digest: digest, Path: path, OriginalPath: original}
	}
	r.paths[digest] = path
	return nil
}

// Len returns the number of distinct digests.
func (r *Registry) Len() int {
	return len(r.paths)
}

// Lookup returns the path registered for digest.
func (r *Registry) Lookup(digest string) (string, bool) {
	path, ok := r.paths[digest]
	return path, ok
}
