package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/utils"
)

// Seed populates a freshly provisioned database with the demo baseline: two
// accounts, three categories, three products and two historical
// transactions. It exists only so a new deployment has something to show.
// Seeding is skipped entirely as soon as a single user exists.
func Seed(ctx context.Context, db *mongo.Database, bcryptCost int) error {
	users := NewUserRepo(db)

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	admin := model.User{Name: "Admin User", Email: "admin@admin.com", Role: model.RoleAdmin}
	demo := model.User{Name: "Amir Khan", Email: "user@user.com", Role: model.RoleUser}
	if admin.Password, err = utils.HashPassword("admin123", bcryptCost); err != nil {
		return err
	}
	if demo.Password, err = utils.HashPassword("user123", bcryptCost); err != nil {
		return err
	}
	if err := users.Insert(ctx, &admin); err != nil {
		return err
	}
	if err := users.Insert(ctx, &demo); err != nil {
		return err
	}

	categories := NewCategoryRepo(db)
	cats := []model.Category{
		{Name: "Shirts", Description: "Stylish shirts for all occasions"},
		{Name: "Pants", Description: "Comfortable and trendy pants"},
		{Name: "Shoes", Description: "Quality footwear for every style"},
	}
	for i := range cats {
		if err := categories.Insert(ctx, &cats[i]); err != nil {
			return err
		}
	}

	products := NewProductRepo(db)
	prods := []model.Product{
		{
			Name:        "Classic White Shirt",
			Description: "Elegant white cotton shirt perfect for office and casual wear",
			Price:       29.99,
			ImageURL:    "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg",
			Stock:       50,
			CategoryID:  cats[0].ID,
		},
		{
			Name:        "Blue Denim Jeans",
			Description: "Comfortable blue denim jeans with modern fit",
			Price:       49.99,
			ImageURL:    "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg",
			Stock:       35,
			CategoryID:  cats[1].ID,
		},
		{
			Name:        "Black Leather Shoes",
			Description: "Premium black leather dress shoes for formal occasions",
			Price:       89.99,
			ImageURL:    "https://images.pexels.com/photos/267301/pexels-photo-267301.jpeg",
			Stock:       25,
			CategoryID:  cats[2].ID,
		},
	}
	for i := range prods {
		if err := products.Insert(ctx, &prods[i]); err != nil {
			return err
		}
	}

	transactions := NewTransactionRepo(db)
	txs := []model.Transaction{
		{
			UserID:          demo.ID,
			ProductID:       prods[0].ID,
			Quantity:        2,
			Status:          model.StatusDelivered,
			TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:          demo.ID,
			ProductID:       prods[2].ID,
			Quantity:        1,
			Status:          model.StatusShipped,
			TransactionDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range txs {
		if _, err := transactions.Insert(ctx, &txs[i]); err != nil {
			return err
		}
	}
	return nil
}
