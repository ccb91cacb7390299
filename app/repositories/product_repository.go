package repositories

import (
	"time"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/metrics"
	"gorm.io/gorm"
)

// Filter is one parsed catalog filter expression, e.g. price <= 3000.
type Filter struct {
	Field string
	Op    string // lte, gte, lt, gt, equals, contains
	Value string
}

// ListOptions shapes the catalog listing query.
type ListOptions struct {
	Skip      int
	Take      int
	SortField string
	SortDir   string // "asc" or "desc"
	Filters   []Filter
}

// filterColumns whitelists the fields a client may filter or sort on.
var filterColumns = map[string]string{
	"price":        "price",
	"rating":       "rating",
	"inStock":      "inStock",
	"title":        "title",
	"slug":         "slug",
	"manufacturer": "manufacturer",
	"categoryId":   "categoryId",
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll returns every product with its category, unfiltered.
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("product.find_all", time.Now())
	products := []models.Product{}
	err := r.db.Preload("Category").Find(&products).Error
	return products, err
}

// List runs the shaped catalog query: filters, offset/limit, order,
// category included.
func (r *ProductRepository) List(opts ListOptions) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("product.list", time.Now())

	q := r.db.Preload("Category").Model(&models.Product{})

	for _, f := range opts.Filters {
		col, ok := filterColumns[f.Field]
		if !ok {
			continue
		}
		switch f.Op {
		case "lte":
			q = q.Where(col+" <= ?", f.Value)
		case "gte":
			q = q.Where(col+" >= ?", f.Value)
		case "lt":
			q = q.Where(col+" < ?", f.Value)
		case "gt":
			q = q.Where(col+" > ?", f.Value)
		case "equals":
			q = q.Where(col+" = ?", f.Value)
		case "contains":
			q = q.Where(col+" LIKE ?", "%"+f.Value+"%")
		}
	}

	if col, ok := filterColumns[opts.SortField]; ok {
		dir := "asc"
		if opts.SortDir == "desc" {
			dir = "desc"
		}
		q = q.Order(col + " " + dir)
	}

	products := []models.Product{}
	err := q.Offset(opts.Skip).Limit(opts.Take).Find(&products).Error
	return products, err
}

// Search returns products whose title or description contains term.
func (r *ProductRepository) Search(term string) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("product.search", time.Now())
	products := []models.Product{}
	err := r.db.
		Where("title LIKE ? OR description LIKE ?", "%"+term+"%", "%"+term+"%").
		Find(&products).Error
	return products, err
}

// FindByID looks up a product by primary key, category included.
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error
	return product, err
}

// FindBySlug looks up a product by its unique slug, category included.
func (r *ProductRepository) FindBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&product).Error
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update applies a partial-field merge to an existing product. Only the
// supplied keys overwrite.
func (r *ProductRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a product inside a transaction that first verifies no
// order-product link still references it. ErrForeignKeyViolated is
// returned when a link exists.
func (r *ProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var links int64
		if err := tx.Model(&models.OrderProduct{}).
			Where("productId = ?", id).
			Count(&links).Error; err != nil {
			return err
		}
		if links > 0 {
			return gorm.ErrForeignKeyViolated
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
