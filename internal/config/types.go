package config

type Config struct {
	Port        string
	Environment string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	DatabaseURL string
	DBMaxConns  int32
	AutoMigrate bool

	RedisURL string

	CORSAllowedOrigins []string
	RateLimit          string
}

// options for the rollup command
type RollupFlags struct {
	Date    string
	Days    int
	Migrate bool
}
