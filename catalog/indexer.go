package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/replayinfo/plugin"
)

var log = commonlog.GetLogger("replayinfo.catalog")

// Indexer extracts replay files through a plugin and records them.
type Indexer struct {
	Store   *Store
	Plugin  *plugin.Plugin
	Workers int
}

// Result is the outcome of indexing one file.
type Result struct {
	Path   string
	Status plugin.Status
	Err    error
}

// Summary describes one indexing run.
type Summary struct {
	ScanID   string
	Results  []Result
	Failures int
}

// Index extracts every path concurrently and stores one entry per file.
// A file that fails to decode is stored with its status and no fields and
// does not stop the run. Only store errors and cancellation abort it.
func (ix *Indexer) Index(ctx context.Context, paths []string) (*Summary, error) {
	scanID := uuid.NewString()
	if err := ix.Store.beginScan(scanID, time.Now()); err != nil {
		return nil, err
	}

	workers := ix.Workers
	if workers <= 0 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]Result, len(paths))
	var mu sync.Mutex
	stored, failures := 0, 0

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := ix.extract(path)
			entry.ScanID = scanID
			results[i] = Result{Path: path, Status: entry.Status, Err: err}
			if err != nil {
				log.Warningf("%s: %s", path, err)
			}
			if err := ix.Store.Put(entry); err != nil {
				return err
			}
			mu.Lock()
			stored++
			if entry.Status != plugin.StatusOK {
				failures++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ferr := ix.Store.finishScan(scanID, stored, failures, false); ferr != nil {
			log.Errorf("scan %s: %s", scanID, ferr)
		}
		return nil, fmt.Errorf("scan %s: %w", scanID, err)
	}
	if err := ix.Store.finishScan(scanID, stored, failures, true); err != nil {
		return nil, err
	}
	log.Infof("scan %s: %d files, %d failures", scanID, len(paths), failures)
	return &Summary{ScanID: scanID, Results: results, Failures: failures}, nil
}

func (ix *Indexer) extract(path string) (Entry, error) {
	entry := Entry{Path: path, Game: ix.Plugin.Game().ID}
	f, err := ix.Plugin.Load(path)
	if err != nil {
		entry.Status = plugin.StatusOf(err)
		return entry, err
	}

	cols := ix.Plugin.Columns()
	entry.Fields = make([]Field, 0, len(cols)+1)
	for _, c := range cols {
		text, err := f.FieldText(c)
		if err != nil {
			entry.Status = plugin.StatusOf(err)
			entry.Fields = nil
			return entry, err
		}
		entry.Fields = append(entry.Fields, Field{Column: c.ShortName(), Value: text})
	}
	if comment := f.Comment(); comment != "" {
		entry.Fields = append(entry.Fields, Field{Column: CommentColumn, Value: comment})
	}
	entry.Status = plugin.StatusOK
	return entry, nil
}

// CommentColumn is the stored column name of the replay comment.
const CommentColumn = "Comment"
