package scrape

import (
	"time"

	"birdwatch/internal/browser"
	"birdwatch/internal/output"

	"github.com/ilyakaznacheev/cleanenv"
)

// Selectors maps the logical element roles of a profile page to query
// selectors. ErrorBanner is a case-insensitive regex matched against
// visible text, not a query selector.
type Selectors struct {
	Posts       string `yaml:"posts" env:"SELECTOR_POSTS"`
	Content     string `yaml:"content" env:"SELECTOR_CONTENT"`
	Reply       string `yaml:"reply" env:"SELECTOR_REPLY"`
	Retweet     string `yaml:"retweet" env:"SELECTOR_RETWEET"`
	Like        string `yaml:"like" env:"SELECTOR_LIKE"`
	ErrorBanner string `yaml:"error_banner" env:"SELECTOR_ERROR_BANNER"`
}

// Timeouts holds the named wait durations in milliseconds.
type Timeouts struct {
	NavigationMS  int `yaml:"navigation_ms" env:"TIMEOUT_NAVIGATION_MS"`
	ContentLoadMS int `yaml:"content_load_ms" env:"TIMEOUT_CONTENT_LOAD_MS"`
	ElementMS     int `yaml:"element_ms" env:"TIMEOUT_ELEMENT_MS"`
	ScrollDelayMS int `yaml:"scroll_delay_ms" env:"TIMEOUT_SCROLL_DELAY_MS"`
}

func (t Timeouts) Navigation() time.Duration {
	return time.Duration(t.NavigationMS) * time.Millisecond
}

func (t Timeouts) ContentLoad() time.Duration {
	return time.Duration(t.ContentLoadMS) * time.Millisecond
}

func (t Timeouts) Element() time.Duration {
	return time.Duration(t.ElementMS) * time.Millisecond
}

func (t Timeouts) ScrollDelay() time.Duration {
	return time.Duration(t.ScrollDelayMS) * time.Millisecond
}

// Config defines the overall structure of the scraper configuration.
// Values are taken from the compiled-in defaults, optionally overridden by
// a config yaml file or environment variables. It is read-only once a
// scrape has started.
type Config struct {
	ScrollAttempts int                  `yaml:"scroll_attempts" env:"SCROLL_ATTEMPTS"`
	Selectors      Selectors            `yaml:"selectors"`
	Timeouts       Timeouts             `yaml:"timeouts"`
	Browser        browser.DriverConfig `yaml:"browser"`
	Writer         output.WriterConfig  `yaml:"writer"`
}

// DefaultConfig returns the compiled-in configuration. The selectors
// target the profile page DOM and break whenever that DOM changes; update
// them here.
func DefaultConfig() *Config {
	return &Config{
		ScrollAttempts: 5,
		Selectors: Selectors{
			Posts:       `article[data-testid="tweet"]`,
			Content:     `div[data-testid="tweetText"]`,
			Reply:       `[data-testid="reply"] span`,
			Retweet:     `[data-testid="retweet"] span`,
			Like:        `[data-testid="like"] span`,
			ErrorBanner: `doesn.t exist|account suspended`,
		},
		Timeouts: Timeouts{
			NavigationMS:  60000,
			ContentLoadMS: 45000,
			ElementMS:     30000,
			ScrollDelayMS: 2000,
		},
	}
}

// NewConfig builds the configuration for one scrape invocation. An empty
// path skips the file and only applies environment overrides on top of the
// defaults.
func NewConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, err
		}
		return config, nil
	}
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}
