package services

// CategoryCustom tags submissions that came in as free text on /promote
// rather than through the category menu.
const CategoryCustom = "custom"

var categoryLabels = map[string]string{
	"shilling": "📢 Shilling Services",
	"hype":     "🚀 Organic Hype Building",
	"mod":      "🛡️ Community Moderation",
	"cm":       "👥 Community Management",
	"dev":      "💻 Web3 Development",
	"design":   "🎨 NFT/Web3 Design",
	"other":    "🔮 Other Web3 Services",
}

// CategoryOrder fixes the menu layout; maps don't iterate stably.
var CategoryOrder = []string{"shilling", "hype", "mod", "cm", "dev", "design", "other"}

// Label returns the display label for a category, falling back to the raw
// tag for custom or unknown categories.
func Label(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// ValidCategory reports whether the tag is one of the fixed menu categories.
func ValidCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}
