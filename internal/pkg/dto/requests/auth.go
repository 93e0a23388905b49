package requests

// Login accepts either username or email as identifier.
type Login struct {
	Identifier string `json:"identifier" validate:"required,min=3"`
	Secret     string `json:"secret" validate:"required"`
}
