package listing

// Config holds configuration for the listing store.
type Config struct {
	// Path is the file holding the encoded listing collection.
	Path string `mapstructure:"path" default:"data/listings.json"`
}
