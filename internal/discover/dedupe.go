package discover

import "github.com/minio/highwayhash"

// hashKey is a fixed 32-byte key, same shape as inspector/graph/hash.go's
// package-level key, required by highwayhash.New64.
var hashKey = []byte("reachgraph-dedupe-key-0123456789")

// ContentHash returns a fast, non-cryptographic hash of data, used to
// recognize a file reached twice through a symlink cycle during Walk
// (spec.md §6's "following symbolic links").
func ContentHash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Dedupe filters files, dropping any whose content hash was already seen.
// Order is preserved for the files that remain.
func Dedupe(files []File) ([]File, error) {
	seen := make(map[uint64]bool, len(files))
	out := make([]File, 0, len(files))
	for _, f := range files {
		h, err := ContentHash(f.Content)
		if err != nil {
			return nil, err
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, f)
	}
	return out, nil
}
