// Package assets caches meshes and textures shared by scene objects.
package assets

import (
	"path/filepath"
	"sync"

	"github.com/riverview3d/riverside/internal/engine/geometry"
)

// Library owns the CPU-side meshes and the texture registry for a scene.
// Objects request meshes by key; the first request builds the buffer and
// later ones reuse it, so every car shares one body and one wheel.
type Library struct {
	dir    string
	meshes *Cache[string, geometry.Buffer]

	mu       sync.RWMutex
	textures map[string]string
}

// NewLibrary creates a library that resolves texture files under dir.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:      dir,
		meshes:   NewCache[string, geometry.Buffer](),
		textures: make(map[string]string),
	}
}

// Dir returns the texture directory.
func (l *Library) Dir() string { return l.dir }

// Mesh returns the buffer stored under key, building it on first use.
func (l *Library) Mesh(key string, build func() geometry.Buffer) geometry.Buffer {
	buf, _ := l.meshes.GetOrLoad(key, func() (geometry.Buffer, error) {
		return build(), nil
	})
	return buf
}

// LookupMesh returns a mesh that was built earlier.
func (l *Library) LookupMesh(key string) (geometry.Buffer, bool) {
	return l.meshes.Get(key)
}

// MeshCount returns the number of distinct meshes built so far.
func (l *Library) MeshCount() int {
	return l.meshes.Len()
}

// RegisterTexture maps a texture name to a file relative to the asset dir.
func (l *Library) RegisterTexture(name, file string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.textures[name] = filepath.Join(l.dir, file)
}

// TexturePath returns the file registered for name.
func (l *Library) TexturePath(name string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.textures[name]
	return p, ok
}

// Cache is a keyed in-memory cache with hit and miss counters.
type Cache[K comparable, V any] struct {
	data map[K]V
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves an item from cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores an item in cache.
func (c *Cache[K, V]) Set(key K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = v
}

// GetOrLoad returns the cached value for key or stores the result of load.
// A failed load is not cached.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Each calls fn for every cached entry in no particular order.
func (c *Cache[K, V]) Each(fn func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range c.data {
		fn(k, v)
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[K]V)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
