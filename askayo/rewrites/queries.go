package rewrites

const (
	queryCreate = `
		INSERT INTO ai_rewrites (client_id, term_key, original_explanation, rewritten_explanation, model, tokens_used, cost_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	queryTotals = `
		SELECT COUNT(id), COALESCE(SUM(tokens_used), 0), COALESCE(SUM(cost_usd), 0)::float8
		FROM ai_rewrites
	`

	queryDailyTotalsSince = `
		SELECT to_char(DATE(created_at), 'YYYY-MM-DD') AS date,
			COUNT(id),
			COALESCE(SUM(tokens_used), 0),
			COALESCE(SUM(cost_usd), 0)::float8
		FROM ai_rewrites
		WHERE created_at >= $1
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at) DESC
	`
)
