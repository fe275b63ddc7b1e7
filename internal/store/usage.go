package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// llmEventsTable is the table ent generates for LLMRequestEvent.
const llmEventsTable = "llm_request_events"

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.usageBy(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.usageBy(ctx, "model")
}

// usageBy aggregates the LLM event log grouped by column, busiest first.
func (r *eventRepo) usageBy(ctx context.Context, column string) ([]UsageRow, error) {
	query, args, err := sq.
		Select(
			column,
			"COUNT(*)",
			"COALESCE(SUM(input_tokens), 0)",
			"COALESCE(SUM(output_tokens), 0)",
			"COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)",
			"COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0)",
		).
		From(llmEventsTable).
		GroupBy(column).
		OrderBy("COUNT(*) DESC", column+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build usage query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var (
			row   UsageRow
			label string
		)
		if err := rows.Scan(&label, &row.Calls, &row.InputTokens, &row.OutputTokens, &row.AvgLatencyMs, &row.Failures); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		if column == "purpose" {
			row.Purpose = label
		} else {
			row.Model = label
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
