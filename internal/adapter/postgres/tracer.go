package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
)

const maxLoggedSQL = 300

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// slowQueryTracer is a pgx.QueryTracer that warns about queries over a threshold.
type slowQueryTracer struct {
	log       *slog.Logger
	threshold time.Duration
	clock     clockwork.Clock
}

func newSlowQueryTracer(logger *slog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       logger.With("component", "postgres"),
		threshold: threshold,
		clock:     clockwork.NewRealClock(),
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: t.clock.Now(), sql: data.SQL})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := t.clock.Since(start.at)
	if elapsed < t.threshold {
		return
	}

	attrs := []any{
		slog.Duration("duration", elapsed),
		slog.String("sql", compactSQL(start.sql)),
	}
	if data.Err != nil {
		attrs = append(attrs, slog.String("error", data.Err.Error()))
	}
	t.log.WarnContext(ctx, "slow query", attrs...)
}

// compactSQL collapses whitespace and truncates long statements for logging.
func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	if len(s) > maxLoggedSQL {
		return s[:maxLoggedSQL] + "..."
	}
	return s
}
