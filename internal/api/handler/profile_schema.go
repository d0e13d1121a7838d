package handler

// updateProfileRequest uses pointers so absent fields are left
// unchanged. Validation happens in the service, which also owns the
// cross-user email uniqueness check.
type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type profileResponse struct {
	Profile userResponse `json:"profile"`
}
