package transport

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateProductRequest struct {
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Dimensions       string   `json:"dimensions"`
	Features         []string `json:"features"`
	PriceChild       float64  `json:"priceChild"`
	PriceAdult       float64  `json:"priceAdult"`
	Images           []string `json:"images"`
	InStock          bool     `json:"inStock"`
}

// PatchProductRequest carries only the fields the admin actually edited.
// Identity and creation time can not be patched.
type PatchProductRequest struct {
	Name             *string   `json:"name"`
	Slug             *string   `json:"slug"`
	ShortDescription *string   `json:"shortDescription"`
	LongDescription  *string   `json:"longDescription"`
	Dimensions       *string   `json:"dimensions"`
	Features         *[]string `json:"features"`
	PriceChild       *float64  `json:"priceChild"`
	PriceAdult       *float64  `json:"priceAdult"`
	Images           *[]string `json:"images"`
	InStock          *bool     `json:"inStock"`
}

// PatchGalleryImageRequest: alt and tags are the only mutable fields after
// upload.
type PatchGalleryImageRequest struct {
	Alt  *string   `json:"alt"`
	Tags *[]string `json:"tags"`
}

type OrderProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	PriceType   string  `json:"priceType"` // "child" or "adult"
	Price       float64 `json:"price"`
}

type OrderRequest struct {
	Name            string         `json:"name"`
	Address         string         `json:"address"`
	PostalCode      string         `json:"postalCode"`
	City            string         `json:"city"`
	ContactMethod   string         `json:"contactMethod"` // "email" or "phone"
	ContactValue    string         `json:"contactValue"`
	Products        []OrderProduct `json:"products"`
	DropoffLocation string         `json:"dropoffLocation"`
	Comments        string         `json:"comments"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type PasswordSettingsRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type EmailSettingsRequest struct {
	OrderEmail string `json:"orderEmail"`
	SMTPHost   string `json:"smtpHost"`
	SMTPPort   string `json:"smtpPort"`
	SMTPUser   string `json:"smtpUser"`
	SMTPPass   string `json:"smtpPass"`
}
