package request

// StoreContactRequest is the public contact form submission. The tel
// rule is a custom validator (10-11 digits, no separators) registered
// in handler.InitTrans.
type StoreContactRequest struct {
	CategoryID uint    `json:"category_id" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required,max=255"`
	LastName   string  `json:"last_name" binding:"required,max=255"`
	Gender     int8    `json:"gender" binding:"required,oneof=1 2 3"`
	Email      string  `json:"email" binding:"required,email,max=255"`
	Tel        string  `json:"tel" binding:"required,tel"`
	Address    string  `json:"address" binding:"required,max=255"`
	Building   *string `json:"building" binding:"omitempty,max=255"`
	Detail     string  `json:"detail" binding:"required,max=120"`
	TagIDs     []uint  `json:"tag_ids" binding:"omitempty,dive,min=1"`
}
