package request

// ProfileRequest is the payload accepted by the profile upsert endpoint.
// The user id and email come from the authenticated token, never from the
// body; email here is only a fallback for tokens without an email claim.
type ProfileRequest struct {
	Email           string `json:"email"`
	CompanyName     string `json:"company_name"`
	ExperienceLevel string `json:"experience_level"`
}
