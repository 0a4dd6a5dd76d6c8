// Package repo – demo seed data.
//
// Inserts a small set of users and listings so a fresh database is browsable
// without registering first. Seeding is idempotent: rows are keyed by fixed
// ids and skipped when already present.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

var seedUsers = []domain.User{
	{ID: "seed-owner-1", BankID: "SEED-BANKID-1", FirstName: "Олена", LastName: "Коваль", Phone: "+380 67 111 11 11", Rating: 4.7},
	{ID: "seed-owner-2", BankID: "SEED-BANKID-2", FirstName: "Ігор", LastName: "Мельник", Phone: "+380 67 222 22 22", Rating: 4.2},
	{ID: "seed-tenant-1", BankID: "SEED-BANKID-TENANT-1", FirstName: "Марія", LastName: "Савчук", Phone: "+380 67 999 99 99", Rating: 4.5},
}

var seedListings = []domain.Listing{
	{
		ID:      "seed-listing-1",
		OwnerID: "seed-owner-1",
		Title:   "Сонячна студія біля метро Лукʼянівська",
		City: domain.City{
			GeonameID: 703448, Name: "Kyiv", NameUk: "Київ",
			Admin1: "12", Lat: 50.45466, Lon: 30.5238,
		},
		Address:     "вул. Дегтярівська, 12",
		Description: "Світла студія 28 м², 7/16 поверх, тепла взимку. Поруч метро, магазини, парк.",
		Price:       11000,
		Images:      domain.ImageList{"placeholder-1.jpg"},
	},
	{
		ID:      "seed-listing-2",
		OwnerID: "seed-owner-2",
		Title:   "Львів: 1-кімнатна біля Оперного",
		City: domain.City{
			GeonameID: 702550, Name: "Lviv", NameUk: "Львів",
			Admin1: "15", Admin2: "4606", Lat: 49.83826, Lon: 24.02324,
		},
		Address:     "просп. Свободи, 15",
		Description: "Самий центр. Високі стелі, історичний будинок, акуратний ремонт.",
		Price:       14000,
		Images:      domain.ImageList{"placeholder-2.jpg"},
	},
}

// SeedDemo inserts the demo users and listings when they are not present yet.
func SeedDemo(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC()
	for _, u := range seedUsers {
		u.CreatedAt = now
		var n int64
		if err := db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", u.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			return err
		}
	}
	for _, l := range seedListings {
		l.CreatedAt = now
		var n int64
		if err := db.WithContext(ctx).Model(&domain.Listing{}).Where("id = ?", l.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&l).Error; err != nil {
			return err
		}
	}
	return nil
}
