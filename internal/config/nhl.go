package config

const (
	envNHLBaseURL = "NHL_BASE_URL"

	defaultNHLBaseURL = "https://api-web.nhle.com/v1"
)

// NHLConfig controls how we talk to the NHL web API.
type NHLConfig struct {
	BaseURL string
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL: envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
	}
}
