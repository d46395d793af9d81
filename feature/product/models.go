package product

// Product describes an uploaded product asset. The struct is ephemeral; the
// durable artifact is the stored image, reachable through ImageURL.
type Product struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}
