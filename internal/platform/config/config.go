package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	AdminToken         string
	DocumentStorageKey string
	DocumentTopic      string
	CollationLocale    string

	EnableRevisionCheck  bool
	EnableTeamIDMatching bool

	PosterFestTitle    string
	PosterFestSubtitle string
	PosterFooterLine1  string
	PosterFooterLine2  string
}

func Load() (Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	return Config{
		ServiceName:  envString("SERVICE_NAME", "festboard"),
		HTTPPort:     envString("HTTP_PORT", "8080"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: envList("KAFKA_BROKERS", []string{"localhost:9092"}),

		AdminToken:         os.Getenv("ADMIN_TOKEN"),
		DocumentStorageKey: envString("DOCUMENT_STORAGE_KEY", "artsFestData"),
		DocumentTopic:      envString("DOCUMENT_TOPIC", "festival.document.replaced"),
		CollationLocale:    envString("COLLATION_LOCALE", "en"),

		EnableRevisionCheck:  envBool("ENABLE_REVISION_CHECK", false),
		EnableTeamIDMatching: envBool("ENABLE_TEAM_ID_MATCHING", false),

		PosterFestTitle:    envString("POSTER_FEST_TITLE", "Mehfile RabeeE"),
		PosterFestSubtitle: envString("POSTER_FEST_SUBTITLE", "meelad fest"),
		PosterFooterLine1:  envString("POSTER_FOOTER_LINE1", "HAYATHUL ISLAM HIGHER SECONDARY MADRASA"),
		PosterFooterLine2:  envString("POSTER_FOOTER_LINE2", "Muringampurayi, Mukkam"),
	}, nil
}

func envString(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envList(name string, fallback []string) []string {
	var items []string
	for _, value := range strings.Split(os.Getenv(name), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			items = append(items, value)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
