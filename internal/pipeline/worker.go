package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Worker processes a single outline job: pick the format front-end, parse,
// store the result. Parse failures are deterministic for the same bytes,
// so there is nothing to retry; a bad document fails once and its
// siblings keep flowing.
type Worker struct {
	cfg   outline.Config
	log   *slog.Logger
	stats *ProcessStats
}

func NewWorker(cfg outline.Config, log *slog.Logger, stats *ProcessStats) *Worker {
	return &Worker{cfg: cfg, log: log, stats: stats}
}

// Process runs the job to completion. ctx cancellation only prevents jobs
// from starting; an in-flight document always finishes.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()
	defer func() {
		w.stats.Record(time.Since(start).Milliseconds())
	}()

	job.SetStatus(StatusParsing)

	p, err := parser.ForFile(job.Filename, w.cfg)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.Fail(err.Error())
		return
	}

	res, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail("parse: " + err.Error())
		return
	}

	job.Complete(res)
	log.Info("outline complete", "title", res.Title, "entries", len(res.Outline),
		"duration_ms", time.Since(start).Milliseconds())
}
