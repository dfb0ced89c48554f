package config

import (
	"flag"
	"fmt"
	"time"
)

// parses CLI flags for the rollup command
func ParseRollupFlags(args []string) (RollupFlags, error) {
	fs := flag.NewFlagSet("rollup", flag.ContinueOnError)
	date := fs.String("date", "", "date to roll up (YYYY-MM-DD, default yesterday)")
	days := fs.Int("days", 1, "number of days to roll up, ending at -date")
	migrate := fs.Bool("migrate", false, "apply pending migrations before rolling up")

	if err := fs.Parse(args); err != nil {
		return RollupFlags{}, err
	}

	if *days < 1 {
		return RollupFlags{}, fmt.Errorf("-days must be at least 1, got %d", *days)
	}

	if *date != "" {
		if _, err := time.Parse(time.DateOnly, *date); err != nil {
			return RollupFlags{}, fmt.Errorf("-date must be YYYY-MM-DD: %w", err)
		}
	}

	return RollupFlags{Date: *date, Days: *days, Migrate: *migrate}, nil
}
