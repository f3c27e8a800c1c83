// Package config loads the application configuration from environment
// variables and an optional .env file, with defaults declared as struct tags
// on the partial configs owned by each package.
package config
