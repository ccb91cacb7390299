package routes

import (
	"github.com/singitronic/storefront/app/controllers"
	"github.com/singitronic/storefront/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI binds every storefront endpoint under /api.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)
	productController := controllers.NewProductController(db)
	orderController := controllers.NewOrderController(db)
	orderProductController := controllers.NewOrderProductController(db)
	imageController := controllers.NewImageController(db)
	wishlistController := controllers.NewWishlistController(db)
	userController := controllers.NewUserController(db)
	mainImageController := controllers.NewMainImageController()

	api := r.Group("/api")

	api.Get("/categories", "categories.list", categoryController.List)
	api.Post("/categories", "categories.create", categoryController.Create)
	api.Get("/categories/{id}", "categories.get", categoryController.Get)
	api.Put("/categories/{id}", "categories.update", categoryController.Update)
	api.Delete("/categories/{id}", "categories.delete", categoryController.Delete)

	api.Get("/products", "products.list", productController.List)
	api.Post("/products", "products.create", productController.Create)
	api.Get("/search", "products.search", productController.Search)
	api.Get("/slugs/{slug}", "products.slug", productController.GetBySlug)
	api.Get("/products/{id}", "products.get", productController.Get)
	api.Put("/products/{id}", "products.update", productController.Update)
	api.Delete("/products/{id}", "products.delete", productController.Delete)

	api.Get("/orders", "orders.list", orderController.List)
	api.Post("/orders", "orders.create", orderController.Create)
	api.Get("/orders/{id}", "orders.get", orderController.Get)
	api.Put("/orders/{id}", "orders.update", orderController.Update)
	api.Delete("/orders/{id}", "orders.delete", orderController.Delete)

	api.Get("/order-product", "order-product.list", orderProductController.ListGrouped)
	api.Post("/order-product", "order-product.create", orderProductController.Create)
	api.Get("/order-product/{id}", "order-product.get", orderProductController.GetByOrder)
	api.Put("/order-product/{id}", "order-product.update", orderProductController.Update)
	api.Delete("/order-product/{id}", "order-product.delete", orderProductController.Delete)

	api.Post("/images", "images.create", imageController.Create)
	api.Get("/images/{id}", "images.list", imageController.ListByProduct)
	api.Put("/images/{id}", "images.update", imageController.Update)
	api.Delete("/images/{id}", "images.delete", imageController.Delete)

	api.Get("/wishlist", "wishlist.list", wishlistController.List)
	api.Post("/wishlist", "wishlist.create", wishlistController.Create)
	api.Get("/wishlist/user/{userId}", "wishlist.user", wishlistController.ListByUser)
	api.Get("/wishlist/{userId}/{productId}", "wishlist.get", wishlistController.Get)
	api.Delete("/wishlist/{userId}/{productId}", "wishlist.delete", wishlistController.Delete)

	api.Get("/users", "users.list", userController.List)
	api.Post("/users", "users.create", userController.Create)
	api.Post("/users/login", "users.login", userController.Login)
	api.Get("/users/email/{email}", "users.email", userController.GetByEmail)
	api.Get("/users/{id}", "users.get", userController.Get)
	api.Put("/users/{id}", "users.update", userController.Update)
	api.Delete("/users/{id}", "users.delete", userController.Delete)

	api.Post("/main-image", "main-image.upload", mainImageController.Upload)
}
