package request

// ExportContactRequest carries the query parameters of the CSV export
// endpoint. Same filters as the listing endpoint, no pagination.
type ExportContactRequest struct {
	Keyword    string `form:"keyword" binding:"omitempty,max=255"`
	Gender     *int8  `form:"gender" binding:"omitempty,oneof=0 1 2 3"`
	CategoryID *uint  `form:"category_id" binding:"omitempty,min=1"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
