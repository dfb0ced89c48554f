package daily

const (
	queryListSince = `
		SELECT to_char(date, 'YYYY-MM-DD'), total_lookups, unique_users, total_feedback,
			thumbs_up, thumbs_down, confused_clicks, ai_rewrites, top_terms, updated_at
		FROM analytics_daily
		WHERE date >= $1::date
		ORDER BY date DESC
	`

	queryUpsert = `
		INSERT INTO analytics_daily (date, total_lookups, unique_users, total_feedback,
			thumbs_up, thumbs_down, confused_clicks, ai_rewrites, top_terms)
		VALUES ($1::date, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (date)
		DO UPDATE SET
			total_lookups = EXCLUDED.total_lookups,
			unique_users = EXCLUDED.unique_users,
			total_feedback = EXCLUDED.total_feedback,
			thumbs_up = EXCLUDED.thumbs_up,
			thumbs_down = EXCLUDED.thumbs_down,
			confused_clicks = EXCLUDED.confused_clicks,
			ai_rewrites = EXCLUDED.ai_rewrites,
			top_terms = EXCLUDED.top_terms,
			updated_at = NOW()
		RETURNING updated_at
	`

	// $1 inclusive start, $2 exclusive end of the day being rolled up
	queryComputeCounts = `
		SELECT
			(SELECT COUNT(*) FROM term_lookups WHERE lookup_timestamp >= $1 AND lookup_timestamp < $2),
			(SELECT COUNT(DISTINCT client_id) FROM term_lookups WHERE lookup_timestamp >= $1 AND lookup_timestamp < $2),
			(SELECT COUNT(*) FROM feedback WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM feedback WHERE created_at >= $1 AND created_at < $2 AND feedback_type = 'thumbs_up'),
			(SELECT COUNT(*) FROM feedback WHERE created_at >= $1 AND created_at < $2 AND feedback_type = 'thumbs_down'),
			(SELECT COUNT(*) FROM feedback WHERE created_at >= $1 AND created_at < $2 AND feedback_type = 'confused'),
			(SELECT COUNT(*) FROM ai_rewrites WHERE created_at >= $1 AND created_at < $2)
	`

	queryComputeTopTerms = `
		SELECT term_key, term_display, COUNT(id) AS lookup_count
		FROM term_lookups
		WHERE found = TRUE AND lookup_timestamp >= $1 AND lookup_timestamp < $2
		GROUP BY term_key, term_display
		ORDER BY lookup_count DESC
		LIMIT $3
	`
)
