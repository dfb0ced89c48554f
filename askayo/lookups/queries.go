package lookups

const (
	queryCreate = `
		INSERT INTO term_lookups (client_id, term_key, term_display, complexity_level, page_url, page_context, found, lookup_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, lookup_timestamp
	`

	queryCountDistinctTermsForClient = `
		SELECT COUNT(DISTINCT term_key) FROM term_lookups WHERE client_id = $1
	`

	queryFirstLookupForClient = `
		SELECT MIN(lookup_timestamp) FROM term_lookups WHERE client_id = $1
	`

	queryCount = `
		SELECT COUNT(*) FROM term_lookups
	`

	queryPopularTerms = `
		SELECT term_key, term_display, COUNT(id) AS lookup_count, COUNT(DISTINCT client_id) AS unique_users
		FROM term_lookups
		WHERE found = TRUE
		GROUP BY term_key, term_display
		ORDER BY lookup_count DESC
		LIMIT $1
	`

	queryTermTotals = `
		SELECT COUNT(*), COUNT(DISTINCT client_id)
		FROM term_lookups
		WHERE term_key = $1 AND found = TRUE
	`

	queryComplexityBreakdown = `
		SELECT complexity_level, COUNT(id)
		FROM term_lookups
		WHERE term_key = $1 AND found = TRUE
		GROUP BY complexity_level
		ORDER BY COUNT(id) DESC
	`

	queryRecentForTerm = `
		SELECT client_id, complexity_level, page_url, lookup_timestamp
		FROM term_lookups
		WHERE term_key = $1 AND found = TRUE
		ORDER BY lookup_timestamp DESC
		LIMIT $2
	`
)
