package store

import (
	"errors"
	"fmt"

	"optica-backend/models"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"
)

var logger = gecho.NewDefaultLogger()

// Store is the single authoritative holder of the three collections
// (clients, products, sales). Every mutation runs in a transaction on
// the handle the store was built with, which may itself already be a
// per-request transaction.
//
// Missing-id cases degrade to benign no-ops rather than errors: this is
// a single-operator tool and interactive callers pre-validate their
// input. Errors returned here are infrastructure failures only.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ---- Clients

// CreateClient assigns a fresh id (unless the caller brought one, as
// the seed fixtures do) and appends the client. Field content is not
// validated here; that is the presentation layer's job.
func (s *Store) CreateClient(client models.Client) (models.Client, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&client).Error
	})
	if err != nil {
		return models.Client{}, fmt.Errorf("create client: %w", err)
	}
	logger.Info("client created", gecho.Field("id", client.Id))
	return client, nil
}

// UpdateClient replaces the stored record matching client.Id with the
// given record, id included fields excluded. No-op when the id matches
// nothing.
func (s *Store) UpdateClient(client models.Client) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Client{}).
			Where("id = ?", client.Id).
			Select("*").Omit("id").
			Updates(client).Error
	})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// DeleteClient removes the client. Sales referencing it are left as
// they are; they carry their own name snapshot.
func (s *Store) DeleteClient(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Client{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (s *Store) Client(id string) (models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// Clients returns the collection in insertion order (rowid order; the
// table is append-only apart from deletes).
func (s *Store) Clients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("rowid").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// ---- Products

func (s *Store) CreateProduct(product models.Product) (models.Product, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	logger.Info("product created", gecho.Field("id", product.Id), gecho.Field("sku", product.SKU))
	return product, nil
}

// UpdateProduct replaces the matching record by id; no-op when absent.
// Historical sales keep their snapshotted prices regardless.
func (s *Store) UpdateProduct(product models.Product) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Product{}).
			Where("id = ?", product.Id).
			Select("*").Omit("id").
			Updates(product).Error
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock sets stock = max(0, stock + delta) for the matching
// product. Delta may be negative (sale, breakage) or positive
// (restock). No-op when the id matches nothing.
func (s *Store) AdjustStock(productId string, delta int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return adjustStockTx(tx, productId, delta)
	})
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

func (s *Store) Product(id string) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *Store) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("rowid").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ---- Sales

// RecordSale appends the sale exactly as given — subtotal, discount,
// total and profit are the caller's responsibility (the POS controller
// derives them before calling) — then applies its side effects in the
// same transaction:
//   - each item decrements the referenced product's stock, clamped at
//     zero; a vanished product is tolerated per item
//   - the client's last purchase date is stamped with the sale date; a
//     deleted client is tolerated
//
// Sales are create-only; there is no update or delete.
func (s *Store) RecordSale(sale models.Sale) (models.Sale, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := adjustStockTx(tx, item.ProductId, -item.Quantity); err != nil {
				return err
			}
		}
		return tx.Model(&models.Client{}).
			Where("id = ?", sale.ClientId).
			Update("last_purchase_date", sale.Date).Error
	})
	if err != nil {
		return models.Sale{}, fmt.Errorf("record sale: %w", err)
	}
	logger.Info("sale recorded",
		gecho.Field("id", sale.Id),
		gecho.Field("client", sale.ClientId),
		gecho.Field("total", sale.Total))
	return sale, nil
}

func (s *Store) Sale(id string) (models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Items", itemOrder).First(&sale, "id = ?", id).Error
	if err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

func (s *Store) Sales() ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items", itemOrder).Order("rowid").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sale_items.id")
}

// adjustStockTx is the shared clamp-at-zero stock mutation. Reads then
// writes inside the caller's transaction; single-writer discipline makes
// the read-modify-write safe.
func adjustStockTx(tx *gorm.DB, productId string, delta int) error {
	var product models.Product
	if err := tx.First(&product, "id = ?", productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // vanished product: nothing to adjust
		}
		return err
	}
	stock := product.Stock + delta
	if stock < 0 {
		stock = 0
	}
	return tx.Model(&models.Product{}).
		Where("id = ?", productId).
		Update("stock", stock).Error
}
