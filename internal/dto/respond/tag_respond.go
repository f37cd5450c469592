package respond

import "contact_admin_server/internal/model"

// TagRespond is the external shape of a tag.
type TagRespond struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewTagRespond(tag *model.Tag) TagRespond {
	return TagRespond{ID: tag.ID, Name: tag.Name}
}

// NewTagRespondList projects a slice of tags.
func NewTagRespondList(tags []model.Tag) []TagRespond {
	list := make([]TagRespond, 0, len(tags))
	for i := range tags {
		list = append(list, NewTagRespond(&tags[i]))
	}
	return list
}
