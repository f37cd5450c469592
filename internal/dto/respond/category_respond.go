package respond

import "contact_admin_server/internal/model"

// CategoryRespond is the external shape of a category.
type CategoryRespond struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

func NewCategoryRespond(category *model.Category) CategoryRespond {
	return CategoryRespond{ID: category.ID, Content: category.Content}
}

// NewCategoryRespondList projects a slice of categories.
func NewCategoryRespondList(categories []model.Category) []CategoryRespond {
	list := make([]CategoryRespond, 0, len(categories))
	for i := range categories {
		list = append(list, NewCategoryRespond(&categories[i]))
	}
	return list
}
