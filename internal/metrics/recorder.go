package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"shorty/internal/config"
)

const drainTimeout = 5 * time.Second

// CopyFromer is the slice of *pgxpool.Pool the recorder writes through.
type CopyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Recorder buffers metrics in memory and writes them to PostgreSQL in
// batches. Record calls never block; a full buffer drops the metric.
type Recorder struct {
	copier       CopyFromer
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *batcher[HTTPMetric]
	infra        *batcher[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(copier CopyFromer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		copier:     copier,
		logger:     logger,
		cfg:        cfg,
		http:       newBatcher("http_metrics", httpColumns, cfg.BufferSize, httpRow),
		infra:      newBatcher("infra_metrics", infraColumns, cfg.BufferSize, infraRow),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	r.http.offer(m, r.logger)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.cfg.Enabled {
		return
	}
	r.infra.offer(m, r.logger)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		r.http.run(ctx, r, interval)
	}()
	go func() {
		defer r.wg.Done()
		r.infra.run(ctx, r, interval)
	}()

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flushers and writes whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type batcher[T any] struct {
	table   string
	columns []string
	row     func(T) []any
	ch      chan T
}

func newBatcher[T any](table string, columns []string, size int, row func(T) []any) *batcher[T] {
	return &batcher[T]{
		table:   table,
		columns: columns,
		row:     row,
		ch:      make(chan T, size),
	}
}

func (b *batcher[T]) offer(m T, logger *slog.Logger) {
	select {
	case b.ch <- m:
	default:
		logger.Warn("metrics buffer full, dropping metric", slog.String("table", b.table))
	}
}

func (b *batcher[T]) run(ctx context.Context, r *Recorder, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			b.drain(r, batch)
			return
		case <-r.shutdownCh:
			b.drain(r, batch)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				b.write(ctx, r, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.write(ctx, r, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *batcher[T]) drain(r *Recorder, batch []T) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
				b.write(ctx, r, batch)
				cancel()
			}
			return
		}
	}
}

func (b *batcher[T]) write(ctx context.Context, r *Recorder, batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = b.row(m)
	}

	_, err := r.copier.CopyFrom(ctx, pgx.Identifier{b.table}, b.columns, pgx.CopyFromRows(rows))
	if err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("table", b.table),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}
