package dashboard

import (
	"context"
	"log"
	"sync"

	"github.com/Kariqs/carta-vendor-portal/models"
)

type ProductAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.NewProduct) error
}

type Inventory struct {
	api ProductAPI
	mu  sync.Mutex
}

func NewInventory(api ProductAPI) *Inventory {
	return &Inventory{api: api}
}

// Products lists the vendor's products, or none when the fetch fails.
func (inv *Inventory) Products(ctx context.Context) []models.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	products, err := inv.api.ListProducts(ctx)
	if err != nil {
		log.Println("Failed to fetch products:", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// AddProduct validates the form and submits it. Invalid input never reaches
// the backend.
func (inv *Inventory) AddProduct(ctx context.Context, input models.NewProduct) error {
	if err := input.Validate(); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.api.CreateProduct(ctx, input.WithDefaults()); err != nil {
		log.Println("Error adding product:", err)
		return err
	}
	return nil
}
