package blog

// Category identifies one of the fixed blog topics.
type Category string

const (
	CategoryPlanning    Category = "planning"
	CategoryDesign      Category = "design"
	CategoryDevelopment Category = "development"
	CategoryPublishing  Category = "publishing"
	CategoryYouTube     Category = "youtube"
	CategoryAIProject   Category = "ai-project"
	CategoryDailyLife   Category = "daily-life"
	CategoryHobby       Category = "hobby"
)

// Categories lists every known category in sidebar display order.
var Categories = []Category{
	CategoryPlanning,
	CategoryDesign,
	CategoryDevelopment,
	CategoryPublishing,
	CategoryYouTube,
	CategoryAIProject,
	CategoryDailyLife,
	CategoryHobby,
}

// ParseCategory reports whether raw names a known category.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// LabelKey is the i18n key holding the display label of the category.
func (c Category) LabelKey() string { return "category." + string(c) }

func (c Category) String() string { return string(c) }
