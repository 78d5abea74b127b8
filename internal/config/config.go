package config

import (
	"os"
	"strings"
)

// Default keyword table for the food/other grouping of root categories. The
// lists are deliberately configuration: sources name their aisles
// differently and the table follows the data, not the code. Matching is
// case-insensitive substring containment, exclusions first.
var (
	DefaultFoodKeywords = []string{
		"potraviny",
		"ovoce", "zelenina", "bylinky", "houby",
		"maso", "ryby", "drůbež", "uzeniny", "šunka", "salám", "klobás", "párky", "paštiky",
		"mléč", "sýr", "jogurt", "tvaroh", "máslo", "tuky", "vejce", "smetan",
		"pečivo", "pekárn", "chléb", "chleb", "rohlík", "koláč", "bábovk", "baget",
		"trvanlivé", "konzerv", "zavař", "džem", "med", "sirup",
		"vaření", "pečení", "těstoviny", "rýže", "luštěniny", "mouka", "cukr", "sůl", "olej", "ocet", "koření",
		"lahůdky", "pomazán", "salát",
		"mražené", "zmrzlin", "hotová jídla", "polotovary", "pizza",
		"zdravá výživa", "speciální výživa", "cereálie", "müsli", "kaše",
		"naplňte svou ledničku",
	}
	DefaultNonFoodKeywords = []string{
		"krmivo", "zvířata", "psi", "kočky", "pes", "kočka", "mazlíčci",
		"drogerie", "kosmetika", "hygiena", "domácnost", "úklid", "papír", "tablety", "ubrousky",
		"sladkosti", "cukrovinky", "bonbony", "čokoláda", "oplatky", "sušenky",
		"protein", "čajové", "sladké",
	}
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	RedisURL string

	// Data
	DataDir    string
	IndexFile  string
	ReportFile string

	// Which category selection model drives the predicate, the transitions
	// and the tree display ("tri-state" or "ancestor-exclusion").
	SelectionPolicy string

	// Default source when the state names none.
	DefaultSource string

	// Category grouping keyword table
	FoodKeywords    []string
	NonFoodKeywords []string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8088"),
		Environment: getEnv("ENVIRONMENT", "development"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		DataDir:    getEnv("DATA_DIR", "data"),
		IndexFile:  getEnv("INDEX_FILE", "index.json"),
		ReportFile: getEnv("REPORT_FILE", "nutrition.analysis.md"),

		SelectionPolicy: getEnv("SELECTION_POLICY", "tri-state"),
		DefaultSource:   getEnv("DEFAULT_SOURCE", "kupi"),

		FoodKeywords:    getEnvList("FOOD_KEYWORDS", DefaultFoodKeywords),
		NonFoodKeywords: getEnvList("NON_FOOD_KEYWORDS", DefaultNonFoodKeywords),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
