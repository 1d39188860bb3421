package category

// Fallbacks used when a record references a name that is not in the catalog.
const (
	DefaultIcon  = "📦"
	DefaultColor = "#8884d8"
)

// Category is static reference data used to decorate transactions and
// budgets by name. It is never edited at runtime.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Catalog is an immutable, ordered set of categories.
type Catalog struct {
	categories []Category
	byName     map[string]int
	byID       map[int64]int
}

func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		byName:     make(map[string]int, len(categories)),
		byID:       make(map[int64]int, len(categories)),
	}
	copy(c.categories, categories)
	for i, cat := range c.categories {
		c.byName[cat.Name] = i
		c.byID[cat.ID] = i
	}
	return c
}

// DefaultCatalog returns the built-in category list.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Category{
		{ID: 1, Name: "Food & Dining", Icon: "🍕", Color: "#ff6b6b"},
		{ID: 2, Name: "Transportation", Icon: "🚗", Color: "#4ecdc4"},
		{ID: 3, Name: "Shopping", Icon: "🛍️", Color: "#45b7d1"},
		{ID: 4, Name: "Entertainment", Icon: "🎬", Color: "#f9ca24"},
		{ID: 5, Name: "Bills & Utilities", Icon: "⚡", Color: "#f0932b"},
		{ID: 6, Name: "Healthcare", Icon: "🏥", Color: "#eb4d4b"},
		{ID: 7, Name: "Education", Icon: "📚", Color: "#6c5ce7"},
		{ID: 8, Name: "Travel", Icon: "✈️", Color: "#a29bfe"},
		{ID: 9, Name: "Fitness", Icon: "💪", Color: "#00b894"},
		{ID: 10, Name: "Personal Care", Icon: "💄", Color: "#e17055"},
		{ID: 11, Name: "Home & Garden", Icon: "🏠", Color: "#00cec9"},
		{ID: 12, Name: "Insurance", Icon: "🛡️", Color: "#636e72"},
		{ID: 13, Name: "Savings", Icon: "💰", Color: "#00b894"},
		{ID: 14, Name: "Investments", Icon: "📈", Color: "#0984e3"},
		{ID: 15, Name: "Other", Icon: "📦", Color: "#74b9ff"},
	})
}

// All returns a copy of the catalog in display order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByName looks a category up by its exact display name.
func (c *Catalog) ByName(name string) (Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

func (c *Catalog) ByID(id int64) (Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

func (c *Catalog) IsValidCategory(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Decorate returns the catalog entry for name, or a placeholder carrying
// name with the default icon and color.
func (c *Catalog) Decorate(name string) Category {
	if cat, ok := c.ByName(name); ok {
		return cat
	}
	return Category{Name: name, Icon: DefaultIcon, Color: DefaultColor}
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}
