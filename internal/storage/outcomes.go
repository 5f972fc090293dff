package storage

import (
	"context"
	"fmt"

	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// SaveOutcome records one classification outcome for a labeled run
// (typically a month, e.g. "2025-04"). Re-running a month upserts: the
// latest outcome for an input wins.
func (s *SQLiteStorage) SaveOutcome(ctx context.Context, run, input string, res model.Result) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if run == "" || input == "" {
		return fmt.Errorf("run and input are required")
	}

	brand, mdl := res.Brand, res.Model
	if res.Kind == model.KindComposite {
		// Composite outcomes are stored flattened for reporting; the
		// handle identifies the brush in aggregate views.
		brand, mdl = res.Handle.Brand, res.Handle.Model
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes (run, input, kind, brand, model, fiber, strategy)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run, input) DO UPDATE SET
			kind = excluded.kind,
			brand = excluded.brand,
			model = excluded.model,
			fiber = excluded.fiber,
			strategy = excluded.strategy,
			recorded_at = CURRENT_TIMESTAMP
	`, run, input, string(res.Kind), brand, mdl, string(res.Fiber), res.Strategy)
	if err != nil {
		return fmt.Errorf("failed to save outcome: %w", err)
	}
	return nil
}

// Unmatched returns the distinct inputs of a run that no rule consumed,
// for curator follow-up.
func (s *SQLiteStorage) Unmatched(ctx context.Context, run string) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT input FROM outcomes
		WHERE run = ? AND kind = ?
		ORDER BY input
	`, run, string(model.KindNoMatch))
	if err != nil {
		return nil, fmt.Errorf("failed to query unmatched inputs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var inputs []string
	for rows.Next() {
		var input string
		if err := rows.Scan(&input); err != nil {
			return nil, fmt.Errorf("failed to scan unmatched input: %w", err)
		}
		inputs = append(inputs, input)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unmatched inputs: %w", err)
	}
	return inputs, nil
}

// StrategyCounts returns how many of a run's outcomes each strategy
// produced, for the aggregate match-rate report.
func (s *SQLiteStorage) StrategyCounts(ctx context.Context, run string) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT strategy, COUNT(*) FROM outcomes
		WHERE run = ?
		GROUP BY strategy
	`, run)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategy counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var strategy string
		var n int
		if err := rows.Scan(&strategy, &n); err != nil {
			return nil, fmt.Errorf("failed to scan strategy count: %w", err)
		}
		counts[strategy] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate strategy counts: %w", err)
	}
	return counts, nil
}
