package social

// Link is an outbound social profile shown in the storefront footer.
type Link struct {
	Name   string `json:"name" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
	Handle string `json:"handle"`
	Icon   string `json:"icon"`
}

// Contact is the static contact block of the storefront.
type Contact struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
