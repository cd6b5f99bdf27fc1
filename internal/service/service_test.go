package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	r := repo.New(db)
	require.NoError(t, r.Migrate())
	return r
}

func seedUser(t *testing.T, r *repo.GormRepo, clerkID string) *models.User {
	t.Helper()

	user := &models.User{
		ClerkID:  clerkID,
		Email:    clerkID + "@example.com",
		Username: clerkID,
	}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}

// seedProduct creates a product with a single variant carrying one
// "M" size at the given price and the given discount percentage.
func seedProduct(t *testing.T, r *repo.GormRepo, slug string, price, discount float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     "product " + slug,
		Slug:     slug,
		Category: "shirts",
		SubProducts: []models.SubProduct{
			{
				Color:    "black",
				Image:    "https://cdn.example.com/" + slug + ".jpg",
				Discount: discount,
				Sizes: []models.SizePrice{
					{Size: "M", Qty: 50, Price: price},
					{Size: "L", Qty: 20, Price: price + 10},
				},
			},
		},
	}
	require.NoError(t, r.DB.Create(product).Error)
	return product
}

func validTestAddress() transport.SaveAddressRequest {
	return transport.SaveAddressRequest{
		FirstName:   "Grace",
		LastName:    "Hopper",
		PhoneNumber: "5550001111",
		State:       "VA",
		City:        "Arlington",
		ZipCode:     "222021",
		Address1:    "1401 Wilson Blvd",
		Country:     "USA",
	}
}
