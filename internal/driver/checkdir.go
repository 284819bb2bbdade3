package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"leo/internal/diag"
	"leo/internal/source"
)

// FileReport is the outcome of checking one file. The FileSet holds only
// that file, so spans in the bag resolve against it directly.
type FileReport struct {
	Path    string
	FileSet *source.FileSet
	Bag     *diag.Bag
	Cached  bool
}

// CheckResult aggregates a directory check.
type CheckResult struct {
	Reports []FileReport
	Broken  int
}

// HasErrors reports whether any file produced error diagnostics.
func (r *CheckResult) HasErrors() bool {
	return r.Broken > 0
}

// CheckDir parses every *.leo file under dir (sorted, recursive) with up to
// jobs parallel workers. Results arrive in path order regardless of worker
// scheduling. cache and sink may be nil.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, sink ProgressSink, cache *DiskCache) (*CheckResult, error) {
	if sink == nil {
		sink = NopSink{}
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	paths, err := ListLeoFiles(dir)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sink.Publish(Event{File: path, Stage: StageParse, Status: StatusStart})

			report := checkFile(path, maxDiagnostics, cache)
			reports[i] = report

			status := StatusOK
			switch {
			case report.Cached:
				status = StatusCached
			case report.Bag.HasErrors():
				status = StatusFail
			}
			sink.Publish(Event{
				File:        path,
				Stage:       StageParse,
				Status:      status,
				Diagnostics: report.Bag.Len(),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &CheckResult{Reports: reports}
	for i := range reports {
		if reports[i].Bag.HasErrors() {
			result.Broken++
		}
	}
	return result, nil
}

// ListLeoFiles returns every *.leo path under dir, sorted, skipping hidden
// directories and build outputs.
func ListLeoFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories and build outputs.
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "build") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".leo" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func checkFile(path string, maxDiagnostics int, cache *DiskCache) FileReport {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		// Surface the I/O failure as a diagnostic so it renders like
		// everything else.
		id := fs.AddVirtual(path, nil)
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFile, source.Span{File: id},
			fmt.Sprintf("cannot load file: %v", err)))
		return FileReport{Path: path, FileSet: fs, Bag: bag}
	}
	file := fs.Get(fileID)

	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(file.Hash, &payload); err == nil && ok {
			return FileReport{
				Path:    path,
				FileSet: fs,
				Bag:     replayDiagnostics(payload, fileID, maxDiagnostics),
				Cached:  true,
			}
		}
	}

	res, err := parseLoaded(fs, fileID, maxDiagnostics)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFile, source.Span{File: fileID},
			fmt.Sprintf("cannot check file: %v", err)))
		return FileReport{Path: path, FileSet: fs, Bag: bag}
	}

	if cache != nil {
		_ = cache.Put(file.Hash, snapshotDiagnostics(path, res.Bag))
	}
	return FileReport{Path: path, FileSet: fs, Bag: res.Bag}
}

// snapshotDiagnostics converts a bag into its cacheable form.
func snapshotDiagnostics(path string, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Broken: bag.HasErrors(),
	}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
			Hint:     d.Hint,
		})
	}
	return payload
}

// replayDiagnostics rebuilds a bag from a cache entry. The content hash key
// guarantees the spans still line up with the file.
func replayDiagnostics(payload DiskPayload, fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Hint:     cd.Hint,
			Primary: source.Span{
				File:  fileID,
				Start: cd.Start,
				End:   cd.End,
			},
		})
	}
	return bag
}
