package http

import "time"

// Profile is a named set of request headers tried as one fetch attempt.
// Profiles are ordered from most browser-like to most tool-like, with
// decreasing timeouts.
type Profile struct {
	Name    string
	Timeout time.Duration
	Headers map[string]string
}

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1"
	botUA     = "faqify-bot/1.0 (+https://faqify.app/bot)"
	bareUA    = "curl/8.4.0"
)

// DefaultProfiles returns the five request profiles in the order they are
// tried.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:    "browser",
			Timeout: 30 * time.Second,
			Headers: map[string]string{
				"User-Agent":                desktopUA,
				"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
				"Accept-Language":           "en-US,en;q=0.9",
				"Accept-Encoding":           "identity",
				"Cache-Control":             "no-cache",
				"Upgrade-Insecure-Requests": "1",
				"Sec-Fetch-Dest":            "document",
				"Sec-Fetch-Mode":            "navigate",
				"Sec-Fetch-Site":            "none",
				"Sec-Fetch-User":            "?1",
			},
		},
		{
			Name:    "minimal",
			Timeout: 25 * time.Second,
			Headers: map[string]string{
				"User-Agent": desktopUA,
				"Accept":     "text/html,application/xhtml+xml",
			},
		},
		{
			Name:    "mobile",
			Timeout: 20 * time.Second,
			Headers: map[string]string{
				"User-Agent":      mobileUA,
				"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
				"Accept-Language": "en-US,en;q=0.9",
			},
		},
		{
			Name:    "bot",
			Timeout: 15 * time.Second,
			Headers: map[string]string{
				"User-Agent": botUA,
				"Accept":     "text/html",
			},
		},
		{
			Name:    "bare",
			Timeout: 10 * time.Second,
			Headers: map[string]string{
				"User-Agent": bareUA,
				"Accept":     "*/*",
			},
		},
	}
}
