package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"giftshop/internal/database"
	"giftshop/internal/models"

	"gorm.io/gorm"
)

// productColumns is the column order mapProduct expects.
var productColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"image_url",
	"category",
	"is_available",
	"created_at",
	"telegram_message_id",
}

var selectProductColumns = strings.Join(productColumns, ", ")

// SQLiteProductRepository is a SQLite implementation of ProductRepository.
// Every call runs on its own handle obtained from the provider.
type SQLiteProductRepository struct {
	provider *database.Provider
}

// NewSQLiteProductRepository creates a new instance of SQLiteProductRepository.
func NewSQLiteProductRepository(provider *database.Provider) *SQLiteProductRepository {
	return &SQLiteProductRepository{
		provider: provider,
	}
}

// List retrieves products matching filter, newest first.
func (r *SQLiteProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		q := db.Table("products").Select(selectProductColumns)
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if filter.AvailableOnly {
			q = q.Where("is_available = ?", true)
		}

		rows, err := q.Order("created_at DESC").Order("id DESC").Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		products, err = mapProducts(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *SQLiteProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product *models.Product
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		var err error
		product, err = getProduct(db, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return product, nil
}

// Create inserts a product and returns it as stored, including the id and
// creation time assigned by the database.
func (r *SQLiteProductRepository) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	var product *models.Product
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		var id int64
		err := db.Raw(
			`INSERT INTO products (name, description, price, image_url, category, is_available, telegram_message_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 RETURNING id`,
			in.Name,
			nullString(in.Description),
			derefInt64(in.Price),
			nullString(in.ImageURL),
			nullString(in.Category),
			in.Available(),
			nullInt64(in.TelegramMessageID),
		).Row().Scan(&id)
		if err != nil {
			return err
		}

		product, err = getProduct(db, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update overwrites every mutable field of the product. The Telegram message
// id is left as it was at creation.
func (r *SQLiteProductRepository) Update(ctx context.Context, id int64, in models.ProductInput) (*models.Product, error) {
	var product *models.Product
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		res := db.Exec(
			`UPDATE products
			 SET name = ?, description = ?, price = ?, image_url = ?, category = ?, is_available = ?
			 WHERE id = ?`,
			in.Name,
			nullString(in.Description),
			derefInt64(in.Price),
			nullString(in.ImageURL),
			nullString(in.Category),
			in.Available(),
			id,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		var err error
		product, err = getProduct(db, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("product with ID %d not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// Delete permanently removes a product.
func (r *SQLiteProductRepository) Delete(ctx context.Context, id int64) error {
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		res := db.Exec(`DELETE FROM products WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("product with ID %d not found for deletion: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Categories returns the distinct non-empty categories in ascending order.
func (r *SQLiteProductRepository) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		return db.Raw(
			`SELECT DISTINCT category FROM products
			 WHERE category IS NOT NULL AND category <> ''
			 ORDER BY category`,
		).Scan(&categories).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func getProduct(db *gorm.DB, id int64) (*models.Product, error) {
	rows, err := db.Table("products").Select(selectProductColumns).Where("id = ?", id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products, err := mapProducts(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

func mapProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := mapProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// mapProduct converts the current row into a Product. It refuses rows whose
// columns differ from productColumns.
func mapProduct(rows *sql.Rows) (models.Product, error) {
	cols, err := rows.Columns()
	if err != nil {
		return models.Product{}, err
	}
	if err := checkColumns(cols); err != nil {
		return models.Product{}, err
	}

	var (
		p           models.Product
		description sql.NullString
		imageURL    sql.NullString
		category    sql.NullString
		createdAt   sql.NullTime
		telegramID  sql.NullInt64
	)
	if err := rows.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Price,
		&imageURL,
		&category,
		&p.IsAvailable,
		&createdAt,
		&telegramID,
	); err != nil {
		return models.Product{}, fmt.Errorf("scanning product row: %w", err)
	}

	p.Description = stringPtr(description)
	p.ImageURL = stringPtr(imageURL)
	p.Category = stringPtr(category)
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time.UTC()
	}
	if telegramID.Valid {
		v := telegramID.Int64
		p.TelegramMessageID = &v
	}
	return p, nil
}

func checkColumns(cols []string) error {
	if len(cols) != len(productColumns) {
		return fmt.Errorf("product row has %d columns, want %d (%v)", len(cols), len(productColumns), cols)
	}
	for i, c := range cols {
		if !strings.EqualFold(c, productColumns[i]) {
			return fmt.Errorf("product row column %d is %q, want %q", i, c, productColumns[i])
		}
	}
	return nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
