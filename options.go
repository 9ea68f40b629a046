package instalens

import (
	"github.com/creasty/defaults"
)

const (
	// DefaultFollowersFile is the default path to the followers export
	DefaultFollowersFile = "followers_1.json"

	// DefaultFollowingFile is the default path to the following export
	DefaultFollowingFile = "following.json"

	// DefaultOutputFile is the default path the analysis report is written to
	DefaultOutputFile = "instagram_analysis.txt"

	// DefaultDebug is the default debug logging flag
	DefaultDebug = false
)

// NewConfig returns a Config with all defaults applied
func NewConfig() *Config {
	var conf Config
	if err := defaults.Set(&conf); err != nil {
		panic(err)
	}
	return &conf
}

// Option is a function that takes a config struct and modifies it
type Option func(*Config) error

// WithFollowersFile sets the path of the followers export to analyze
func WithFollowersFile(path string) Option {
	return func(conf *Config) error {
		conf.FollowersFile = path
		return nil
	}
}

// WithFollowingFile sets the path of the following export to analyze
func WithFollowingFile(path string) Option {
	return func(conf *Config) error {
		conf.FollowingFile = path
		return nil
	}
}

// WithOutputFile sets the path the analysis report is written to
func WithOutputFile(path string) Option {
	return func(conf *Config) error {
		conf.OutputFile = path
		return nil
	}
}

// WithDebug sets the debug logging flag
func WithDebug(debug bool) Option {
	return func(conf *Config) error {
		conf.Debug = debug
		return nil
	}
}
