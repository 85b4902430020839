package devserver

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Server is an in-memory stand-in for the real backend, implementing the
// storefront wire contract for local development and tests. Carts are
// keyed by bearer token; any non-empty token is accepted.
type Server struct {
	log *slog.Logger

	mu       sync.Mutex
	products []catalogdomain.Product
	carts    map[string][]cartdomain.Entry
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		log:      log,
		products: seedProducts(),
		carts:    map[string][]cartdomain.Entry{},
	}
}

func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	v1 := app.Group("/api/v1")
	v1.Get("/products", s.listProducts)
	v1.Get("/products/search", s.searchProducts)
	v1.Get("/cart", s.getCart)
	v1.Post("/cart", s.postCart)

	return app
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.products)
}

func (s *Server) searchProducts(c *fiber.Ctx) error {
	value := strings.ToLower(c.Query("value"))

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]catalogdomain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), value) ||
			strings.Contains(strings.ToLower(p.Category), value) {
			matched = append(matched, p)
		}
	}
	return c.JSON(matched)
}

func (s *Server) getCart(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return failure(c, fiber.StatusBadRequest, "Protected route, Oauth2 Bearer token not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.cartOf(token))
}

func (s *Server) postCart(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return failure(c, fiber.StatusBadRequest, "Protected route, Oauth2 Bearer token not found")
	}

	var entry cartdomain.Entry
	if err := c.BodyParser(&entry); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if entry.Qty < 0 {
		return failure(c, fiber.StatusBadRequest, "Quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productExists(entry.ProductID) {
		return failure(c, fiber.StatusNotFound, "Product doesn't exist")
	}

	cart := s.cartOf(token)
	updated := make([]cartdomain.Entry, 0, len(cart)+1)
	found := false
	for _, e := range cart {
		if e.ProductID == entry.ProductID {
			found = true
			if entry.Qty > 0 {
				updated = append(updated, entry)
			}
			continue
		}
		updated = append(updated, e)
	}
	if !found && entry.Qty > 0 {
		updated = append(updated, entry)
	}
	s.carts[token] = updated

	s.log.Debug("cart updated",
		slog.String("product_id", entry.ProductID),
		slog.Int("qty", entry.Qty),
		slog.Int("lines", len(updated)))

	return c.JSON(updated)
}

func (s *Server) cartOf(token string) []cartdomain.Entry {
	cart, ok := s.carts[token]
	if !ok {
		cart = []cartdomain.Entry{}
		s.carts[token] = cart
	}
	return cart
}

func (s *Server) productExists(id string) bool {
	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func failure(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

func seedProducts() []catalogdomain.Product {
	seed := []struct {
		name     string
		category string
		cost     float64
		rating   int
	}{
		{"iPhone XR", "Phones", 100, 4},
		{"Basketball", "Sports", 100, 5},
		{"UNIFACTOR Mens Running Shoes", "Fashion", 50, 5},
		{"YONEX Smash Badminton Racquet", "Sports", 100, 5},
		{"Tan Leatherette Weekender Duffle", "Fashion", 31, 4},
		{"The Remains of the Day", "Books", 31, 5},
	}

	products := make([]catalogdomain.Product, 0, len(seed))
	for _, sp := range seed {
		products = append(products, catalogdomain.Product{
			ID:       uuid.NewString(),
			Name:     sp.name,
			Category: sp.category,
			Cost:     sp.cost,
			Rating:   sp.rating,
			ImageURL: "https://i.imgur.com/lulqWzW.jpg",
		})
	}
	return products
}
