package habit

// Category is the fixed life-domain every habit belongs to. The set is
// closed and not user-editable.
type Category string

const (
	CategoryMind Category = "mind"
	CategoryBody Category = "body"
	CategorySoul Category = "soul"
)

var AllCategories = []Category{
	CategoryMind,
	CategoryBody,
	CategorySoul,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Color returns the display color for a single category.
func (c Category) Color() string {
	switch c {
	case CategoryMind:
		return "#3B82F6"
	case CategoryBody:
		return "#22C55E"
	case CategorySoul:
		return "#EF4444"
	default:
		return ""
	}
}
