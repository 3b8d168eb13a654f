package domain

// Categories are a fixed legacy taxonomy. They survive only as well-known
// tags; the historic ids are kept for API compatibility.
const (
	CategoryIDNonProfit  ID = "2cd00bebec0c48ba9db761da48678134"
	CategoryIDCommercial ID = "77b3c33a92554bcf8e8c2c86cedd6f6f"
	CategoryIDEvent      ID = "c2dc278a2d6a4b9b8a50cb606fc017ed"
)

const (
	CategoryTagNonProfit  = "non-profit"
	CategoryTagCommercial = "commercial"
	CategoryTagEvent      = "event"
)

// Category is one entry of the legacy taxonomy.
type Category struct {
	ID ID
}

var categoryNamesByID = map[ID]string{
	CategoryIDNonProfit:  CategoryTagNonProfit,
	CategoryIDCommercial: CategoryTagCommercial,
	CategoryIDEvent:      CategoryTagEvent,
}

var categoryIDsByTag = map[string]ID{
	CategoryTagNonProfit:  CategoryIDNonProfit,
	CategoryTagCommercial: CategoryIDCommercial,
	CategoryTagEvent:      CategoryIDEvent,
}

// Name returns the tag this category is encoded as, or "" for unknown ids.
func (c Category) Name() string {
	return categoryNamesByID[c.ID]
}

// CategoryForTag looks up the category encoded by a tag.
func CategoryForTag(tag string) (Category, bool) {
	id, ok := categoryIDsByTag[tag]
	return Category{ID: id}, ok
}

// SplitCategoriesFromTags separates the tags that encode categories from the
// free-form rest, preserving order.
func SplitCategoriesFromTags(tags []string) ([]Category, []string) {
	var categories []Category
	// Never nil: the rest serializes as a JSON array even when empty.
	rest := make([]string, 0, len(tags))
	for _, tag := range tags {
		if c, ok := CategoryForTag(tag); ok {
			categories = append(categories, c)
			continue
		}
		rest = append(rest, tag)
	}
	return categories, rest
}
