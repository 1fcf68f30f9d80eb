package configs

// Redis configures the store that remembers which popups a visitor has
// already seen. When disabled an in-process store is used instead.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	URL     string `env:"URL" envDefault:"redis://localhost:6379/0"`
	// DB overrides the database number of URL when non-negative.
	DB int `env:"DB" envDefault:"-1"`
}
