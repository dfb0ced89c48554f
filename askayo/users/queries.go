package users

const (
	queryRecordLookup = `
		INSERT INTO users (client_id, first_seen_at, last_seen_at, total_lookups)
		VALUES ($1, NOW(), NOW(), 1)
		ON CONFLICT (client_id)
		DO UPDATE SET
			total_lookups = users.total_lookups + 1,
			last_seen_at = NOW(),
			updated_at = NOW()
		RETURNING id, client_id, first_seen_at, last_seen_at, total_lookups
	`

	queryFindByClientID = `
		SELECT id, client_id, first_seen_at, last_seen_at, total_lookups
		FROM users
		WHERE client_id = $1
	`

	queryCount = `
		SELECT COUNT(*) FROM users
	`

	queryCountActiveSince = `
		SELECT COUNT(*) FROM users WHERE last_seen_at >= $1
	`

	queryAverageLookups = `
		SELECT COALESCE(AVG(total_lookups), 0)::float8 FROM users
	`

	queryLookupHistogram = `
		SELECT total_lookups, COUNT(*)
		FROM users
		GROUP BY total_lookups
		ORDER BY total_lookups
	`
)
