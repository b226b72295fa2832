package opensearch

// Config holds OpenSearch connection settings.
type Config struct {
	Addresses    []string `env:"OPENSEARCH_ADDRESSES" envSeparator:"," envDefault:"http://localhost:9200"`
	Username     string   `env:"OPENSEARCH_USERNAME"`
	Password     string   `env:"OPENSEARCH_PASSWORD"`
	MaxRetries   int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
	IndexPrefix  string   `env:"OPENSEARCH_INDEX_PREFIX" envDefault:"signaturecraft"`
}

// Index returns the prefixed index name.
func (c Config) Index(name string) string {
	if c.IndexPrefix == "" {
		return name
	}
	return c.IndexPrefix + "_" + name
}
