package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-generator/internal/compiler"
	"model-generator/internal/gen"
)

const personXML = `<Model name="Person"><Property name="id" type="int" inEntity="true" inDTO="true"/></Model>`

type recorder struct {
	mu      sync.Mutex
	results []compiler.Result
}

func (r *recorder) record(res compiler.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, res)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.results)
}

func newWatcher(t *testing.T, root, out string, rec *recorder) *Watcher {
	t.Helper()

	w, err := New(compiler.New(gen.DefaultConfig()), Options{
		Root:      root,
		Pattern:   "**/*.model.xml",
		OutputDir: out,
		Workers:   2,
		CacheSize: 16,
		Debounce:  20 * time.Millisecond,
		OnResult:  rec.record,
	})
	require.NoError(t, err)

	return w
}

func write(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_InvalidCacheSize(t *testing.T) {
	t.Parallel()

	_, err := New(compiler.New(gen.DefaultConfig()), Options{CacheSize: 0})
	assert.Error(t, err)
}

func TestWatcher_Build(t *testing.T) {
	t.Parallel()

	root, out := t.TempDir(), t.TempDir()
	write(t, filepath.Join(root, "person.model.xml"), personXML)
	write(t, filepath.Join(root, "shop", "broken.model.xml"), "<Model")

	rec := &recorder{}
	w := newWatcher(t, root, out, rec)

	require.NoError(t, w.Build(context.Background()))
	assert.Equal(t, 2, rec.len())

	assert.FileExists(t, filepath.Join(out, "entities", "Person.Entity.g.go"))
	assert.FileExists(t, filepath.Join(out, "dtos", "Person.DTO.g.go"))

	changed, err := w.Rebuild("person.model.xml")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 2, rec.len())
}

func TestWatcher_Rebuild(t *testing.T) {
	t.Parallel()

	root, out := t.TempDir(), t.TempDir()
	path := filepath.Join(root, "person.model.xml")
	write(t, path, personXML)

	rec := &recorder{}
	w := newWatcher(t, root, out, rec)

	changed, err := w.Rebuild("person.model.xml")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = w.Rebuild("person.model.xml")
	require.NoError(t, err)
	assert.False(t, changed)

	write(t, path, `<Model name="Person"><Property name="name" type="string" inEntity="true" inDTO="true"/></Model>`)

	changed, err = w.Rebuild("person.model.xml")
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(filepath.Join(out, "dtos", "Person.DTO.g.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name")

	w.Forget("person.model.xml")

	changed, err = w.Rebuild("person.model.xml")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, rec.len())

	_, err = w.Rebuild("missing.model.xml")
	assert.Error(t, err)
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	root, out := t.TempDir(), t.TempDir()

	rec := &recorder{}
	w := newWatcher(t, root, out, rec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	entity := filepath.Join(out, "entities", "Order.Entity.g.go")

	// Keep writing until the watcher is up and has compiled the document.
	require.Eventually(t, func() bool {
		doc := filepath.Join(root, "shop", "order.model.xml")
		_ = os.MkdirAll(filepath.Dir(doc), 0o755)
		_ = os.WriteFile(doc, []byte(`<Model name="Order"><Property name="id" type="long" inEntity="true" inDTO="true"/></Model>`), 0o644)

		_, err := os.Stat(entity)

		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.GreaterOrEqual(t, rec.len(), 1)
}
