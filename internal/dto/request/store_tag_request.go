package request

// StoreTagRequest creates a new tag. Uniqueness of the name is checked
// in the service, not here, so the failure surfaces as a field error.
type StoreTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}
