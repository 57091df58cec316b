package texture

import (
	"io/fs"
	"sort"

	log "github.com/sirupsen/logrus"

	"gadzooks/level"
)

// Store owns every texture a scene uses. Grid cells only carry the reference.
type Store struct {
	textures map[level.TextureRef]*Texture
}

func NewStore() *Store {
	return &Store{textures: make(map[level.TextureRef]*Texture)}
}

func (s *Store) Add(ref level.TextureRef, t *Texture) {
	if t == nil {
		t = Default()
	}
	s.textures[ref] = t
}

// LoadAll loads every texture in paths from fsys. A texture that fails to load is
// logged and replaced by the default texture; loading never aborts the scene. The
// number of failures is returned.
func (s *Store) LoadAll(fsys fs.FS, paths map[string]string) int {
	refs := make([]string, 0, len(paths))
	for ref := range paths {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	failed := 0
	for _, ref := range refs {
		path := paths[ref]
		t, err := LoadFS(fsys, path)
		if err != nil {
			log.WithFields(log.Fields{
				"texture": ref,
				"path":    path,
			}).WithError(err).Warn("texture load failed, using default")
			t = Default()
			failed++
		} else {
			log.WithFields(log.Fields{
				"texture": ref,
				"size":    [2]int{t.Width, t.Height},
			}).Debug("texture loaded")
		}
		s.textures[level.TextureRef(ref)] = t
	}
	return failed
}

// Resolve returns the texture for ref, or the default texture when ref is empty
// or unknown.
func (s *Store) Resolve(ref level.TextureRef) *Texture {
	if ref == "" {
		return Default()
	}
	if t, ok := s.textures[ref]; ok {
		return t
	}
	return Default()
}

func (s *Store) Has(ref level.TextureRef) bool {
	_, ok := s.textures[ref]
	return ok
}

func (s *Store) Len() int { return len(s.textures) }
