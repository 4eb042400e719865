package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"breeze/internal/resolve"
)

const batchStub = `
[class."p.Other"]

[[class."p.Other".fields]]
name = "FOO"
type = "int"
static = true

[[class."p.Other".methods]]
name = "BAR"
returns = "bool"
static = true
`

const fooQuery = `
[node]
kind = "constant"
name = "FOO"

[receiver]
type = "p.Other"
static = true
`

const barQuery = `
[node]
kind = "staticcall"
name = "BAR"
owner = "p.Other"

[scope]
method_call = true
args = []
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBatchResolvesQueriesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	stubPath := writeFile(t, dir, "classes.toml", batchStub)
	writeFile(t, dir, "nested/b_bar.query.toml", barQuery)
	writeFile(t, dir, "a_foo.query.toml", fooQuery)

	results, err := Batch(context.Background(), stubPath, dir, Options{Jobs: 4})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if !strings.HasSuffix(results[0].Path, "a_foo.query.toml") {
		t.Fatalf("results must be path-ordered: %v", []string{results[0].Path, results[1].Path})
	}
	if results[0].Err != nil || results[0].Result.Confidence != resolve.Exact {
		t.Fatalf("field query: %+v", results[0])
	}
	if results[1].Err != nil || results[1].Result.Confidence != resolve.Inferred {
		t.Fatalf("static call query: %+v", results[1])
	}
}

func TestBatchReportsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	stubPath := writeFile(t, dir, "classes.toml", batchStub)
	writeFile(t, dir, "good.query.toml", fooQuery)
	writeFile(t, dir, "bad.query.toml", "[node]\nkind = \"bogus\"")

	results, err := Batch(context.Background(), stubPath, dir, Options{})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Fatalf("broken query must carry its error")
	}
	if results[1].Err != nil {
		t.Fatalf("good query must not be affected: %v", results[1].Err)
	}
}

func TestBatchProgressCoversAllFiles(t *testing.T) {
	dir := t.TempDir()
	stubPath := writeFile(t, dir, "classes.toml", batchStub)
	writeFile(t, dir, "one.query.toml", fooQuery)
	writeFile(t, dir, "two.query.toml", barQuery)

	var calls int
	_, err := Batch(context.Background(), stubPath, dir, Options{
		Jobs: 1,
		Progress: func(done, total int, res BatchResult) {
			calls++
			if total != 2 || done < 1 || done > 2 {
				t.Errorf("progress out of range: done=%d total=%d", done, total)
			}
			if res.Path == "" {
				t.Errorf("progress must carry the finished result")
			}
		},
	})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("progress must fire once per file, got %d", calls)
	}
}

func TestLoadStubUsesAndInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	stubPath := writeFile(t, dir, "classes.toml", batchStub)
	cache, err := OpenSnapshotCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	u, err := LoadStub(stubPath, cache)
	if err != nil {
		t.Fatalf("LoadStub: %v", err)
	}
	if _, ok := u.Lookup("p.Other"); !ok {
		t.Fatalf("stub class missing after first load")
	}

	key, err := HashFile(stubPath)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	cached, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("snapshot must be cached after load: ok=%v err=%v", ok, err)
	}
	other, _ := cached.Lookup("p.Other")
	if ms := cached.MethodsNamed(other, "BAR"); len(ms) != 1 || !ms[0].Static {
		t.Fatalf("cached universe must restore members: %+v", ms)
	}

	// changing the stub changes the key; the new content must win
	writeFile(t, dir, "classes.toml", batchStub+"\n[class.\"p.Extra\"]\n")
	u2, err := LoadStub(stubPath, cache)
	if err != nil {
		t.Fatalf("LoadStub after edit: %v", err)
	}
	if _, ok := u2.Lookup("p.Extra"); !ok {
		t.Fatalf("edited stub must not be served from the old cache entry")
	}
}

func TestSnapshotCacheMissOnAbsentKey(t *testing.T) {
	cache, err := OpenSnapshotCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if _, ok, err := cache.Get(Digest{1, 2, 3}); ok || err != nil {
		t.Fatalf("absent key must read as a clean miss: ok=%v err=%v", ok, err)
	}
}
