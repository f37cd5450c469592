package request

// UpdateTagRequest renames a tag. The service excludes the tag itself
// from the uniqueness check, so renaming to the current name succeeds.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}
