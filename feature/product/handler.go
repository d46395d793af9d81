package product

import (
	"retail-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product uploads.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Post("/upload", h.HandleUpload)
}

// HandleUpload uploads a product image.
// @Summary Upload Product Image
// @Description Stores a product image in the public bucket and returns its retrieval URL.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param price formData number false "Product price"
// @Param image formData file true "Image file"
// @Success 201 {object} Product "Product with image URL"
// @Failure 400 {object} map[string]string "Missing image"
// @Failure 500 {object} map[string]string "Upload failed"
// @Router /products/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read upload"})
	}
	defer file.Close()

	p := Product{
		ProductID:   uuid.NewString(),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       priceValue(c.FormValue("price")),
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url := h.service.UploadImage(c.Context(), file, fileHeader.Size, p.ProductID, fileHeader.Filename, contentType)
	if url == "" {
		l.Error("Product image upload failed", zap.String("product_id", p.ProductID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload product image"})
	}

	p.ImageURL = url
	return c.Status(fiber.StatusCreated).JSON(p)
}
