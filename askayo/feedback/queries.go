package feedback

const (
	queryCreate = `
		INSERT INTO feedback (client_id, term_key, feedback_type, complexity_level, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	queryCount = `
		SELECT COUNT(*) FROM feedback
	`

	queryConfusingTerms = `
		SELECT term_key, COUNT(id) AS confused_count
		FROM feedback
		WHERE feedback_type = 'confused'
		GROUP BY term_key
		ORDER BY confused_count DESC
		LIMIT $1
	`

	queryBreakdownForTerm = `
		SELECT feedback_type, COUNT(id)
		FROM feedback
		WHERE term_key = $1
		GROUP BY feedback_type
		ORDER BY feedback_type
	`
)
