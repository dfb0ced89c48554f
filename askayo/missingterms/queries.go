package missingterms

const (
	queryRecord = `
		INSERT INTO missing_terms (client_id, missing_text, page_url, page_context, lookup_count, first_seen_at, last_seen_at)
		VALUES ($1, $2, $3, $4, 1, NOW(), NOW())
		ON CONFLICT (missing_text)
		DO UPDATE SET
			lookup_count = missing_terms.lookup_count + 1,
			last_seen_at = NOW()
		RETURNING id, client_id, missing_text, page_url, page_context, lookup_count, first_seen_at, last_seen_at
	`

	queryTop = `
		SELECT id, client_id, missing_text, page_url, page_context, lookup_count, first_seen_at, last_seen_at
		FROM missing_terms
		ORDER BY lookup_count DESC, last_seen_at DESC
		LIMIT $1
	`
)
