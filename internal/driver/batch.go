// Package driver runs resolution over whole directories: universes are loaded
// from stubs (through the snapshot cache), query files fan out across workers,
// and results come back in deterministic path order.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"breeze/internal/resolve"
	"breeze/internal/stub"
	"breeze/internal/types"
)

// QuerySuffix marks resolvable query files inside a batch directory.
const QuerySuffix = ".query.toml"

// BatchResult is the outcome for one query file.
type BatchResult struct {
	Path   string
	Result resolve.Result
	Err    error
}

// Options configures a batch run.
type Options struct {
	// Jobs caps worker parallelism; zero means GOMAXPROCS.
	Jobs int

	// Cache, when set, short-circuits stub loading for unchanged stub files.
	Cache *SnapshotCache

	// Progress is invoked after each query finishes. done counts finished
	// queries; calls may arrive from several workers but never concurrently
	// for the same done value.
	Progress func(done, total int, res BatchResult)
}

// LoadStub loads a universe from a stub file, consulting the snapshot cache
// when one is given. Cache misses and corrupt entries fall back to a fresh
// load that repopulates the cache.
func LoadStub(path string, cache *SnapshotCache) (*types.Universe, error) {
	if cache == nil {
		return stub.LoadUniverse(path)
	}
	key, err := HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("hash stub %s: %w", path, err)
	}
	if u, ok, err := cache.Get(key); err == nil && ok {
		return u, nil
	}
	u, err := stub.LoadUniverse(path)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(key, u); err != nil {
		return nil, fmt.Errorf("cache stub %s: %w", path, err)
	}
	return u, nil
}

// ListQueries returns the sorted *.query.toml files under dir.
func ListQueries(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, QuerySuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Batch resolves every query file under dir against the stub's universe in
// parallel. The result slice is ordered by path regardless of completion
// order; per-file failures land in the corresponding BatchResult, not in the
// returned error.
func Batch(ctx context.Context, stubPath, dir string, opts Options) ([]BatchResult, error) {
	u, err := LoadStub(stubPath, opts.Cache)
	if err != nil {
		return nil, err
	}
	return Run(ctx, u, dir, opts)
}

// Run is Batch with an already loaded universe.
func Run(ctx context.Context, u *types.Universe, dir string, opts Options) ([]BatchResult, error) {
	files, err := ListQueries(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// slots are unique per goroutine, no mutex needed
	results := make([]BatchResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = runQuery(u, path)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(files), results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// runQuery resolves a single query file against a shared universe. The
// universe is read-only by contract, so concurrent callers are safe.
func runQuery(u *types.Universe, path string) BatchResult {
	q, err := stub.LoadQuery(path, u)
	if err != nil {
		return BatchResult{Path: path, Err: err}
	}
	engine := resolve.NewEngine(u, q.Source)
	res := engine.Lookup(q.Node, q.Scope, q.Receiver, q.StaticReceiver)
	return BatchResult{Path: path, Result: res}
}

// FormatResult renders a result the way the CLI prints it: type, declaring
// type, declaration, confidence.
func FormatResult(u *types.Universe, r resolve.Result) string {
	return fmt.Sprintf("type=%s declaring=%s decl=%s confidence=%s",
		className(u, r.Type), className(u, r.DeclaringType), declName(u, r.Decl), r.Confidence)
}

func className(u *types.Universe, id types.ClassID) string {
	if !id.IsValid() {
		return "<none>"
	}
	return u.Name(id)
}

func declName(u *types.Universe, d types.Decl) string {
	switch d := d.(type) {
	case nil:
		return "<none>"
	case types.ClassID:
		return "class " + className(u, d)
	case *types.Field:
		return fmt.Sprintf("field %s.%s", className(u, d.Owner), d.Name)
	case *types.Method:
		return fmt.Sprintf("method %s.%s/%d", className(u, d.Owner), d.Name, len(d.Params))
	case *types.Property:
		return fmt.Sprintf("property %s.%s", className(u, d.Owner), d.Name)
	case *types.Constructor:
		return fmt.Sprintf("constructor %s/%d", className(u, d.Owner), len(d.Params))
	case *types.Param:
		return "param " + d.Name
	default:
		return "expr"
	}
}
