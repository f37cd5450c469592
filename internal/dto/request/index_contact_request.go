// Package request defines the bound request structs validated at the
// HTTP boundary.
package request

// IndexContactRequest carries the query parameters of the contact
// listing endpoint. gender=0 is the admin client's "no filter" value
// and is accepted here; the service normalizes it away.
type IndexContactRequest struct {
	Keyword    string `form:"keyword" binding:"omitempty,max=255"`
	Gender     *int8  `form:"gender" binding:"omitempty,oneof=0 1 2 3"`
	CategoryID *uint  `form:"category_id" binding:"omitempty,min=1"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
}
