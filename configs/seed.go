package configs

import (
	"log"

	"pos-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin makes sure a default admin exists so a fresh install is usable.
func SeedAdmin(username, password string) error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("default admin user created:", username)
	return nil
}

// SeedDefaults inserts the starter categories, a sample menu and the
// base settings on first run. FirstOrCreate keeps it idempotent.
func SeedDefaults() error {
	db := DB()

	categories := []entity.Category{
		{Name: "SHAWARMA", DisplayOrder: 1},
		{Name: "WRAP", DisplayOrder: 2},
		{Name: "BURGER", DisplayOrder: 3},
		{Name: "POTATO", DisplayOrder: 4},
		{Name: "BREAKFAST", DisplayOrder: 5},
		{Name: "BROAST", DisplayOrder: 6},
		{Name: "DRINKS", DisplayOrder: 7},
		{Name: "EXTRAS", DisplayOrder: 8},
	}
	byName := map[string]uint{}
	for _, c := range categories {
		row := entity.Category{Name: c.Name}
		if err := db.Where(entity.Category{Name: c.Name}).
			Attrs(entity.Category{DisplayOrder: c.DisplayOrder, IsActive: true}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		byName[c.Name] = row.ID
	}

	var itemCount int64
	db.Model(&entity.MenuItem{}).Count(&itemCount)
	if itemCount == 0 {
		code := func(s string) *string { return &s }
		items := []entity.MenuItem{
			{CategoryID: byName["SHAWARMA"], Name: "Chicken Shawarma", Code: code("SHW001"), Price: 15.00, DisplayOrder: 1},
			{CategoryID: byName["SHAWARMA"], Name: "Beef Shawarma", Code: code("SHW002"), Price: 18.00, DisplayOrder: 2},
			{CategoryID: byName["WRAP"], Name: "Chicken Wrap", Code: code("WRP001"), Price: 12.00, DisplayOrder: 1},
			{CategoryID: byName["WRAP"], Name: "Falafel Wrap", Code: code("WRP003"), Price: 10.00, DisplayOrder: 2},
			{CategoryID: byName["BURGER"], Name: "Classic Burger", Code: code("BRG001"), Price: 18.00, DisplayOrder: 1},
			{CategoryID: byName["BURGER"], Name: "Cheese Burger", Code: code("BRG002"), Price: 20.00, DisplayOrder: 2},
			{CategoryID: byName["POTATO"], Name: "French Fries (M)", Code: code("POT002"), Price: 8.00, DisplayOrder: 1},
			{CategoryID: byName["BREAKFAST"], Name: "Omelette", Code: code("BRK004"), Price: 14.00, DisplayOrder: 1},
			{CategoryID: byName["BROAST"], Name: "Broast 4 Pcs", Code: code("BRS002"), Price: 28.00, DisplayOrder: 1},
			{CategoryID: byName["DRINKS"], Name: "Water", Code: code("DRK001"), Price: 2.00, DisplayOrder: 1},
			{CategoryID: byName["DRINKS"], Name: "Fresh Juice", Code: code("DRK003"), Price: 10.00, DisplayOrder: 2},
			{CategoryID: byName["EXTRAS"], Name: "Garlic Sauce", Code: code("EXT001"), Price: 2.00, DisplayOrder: 1},
		}
		for i := range items {
			items[i].IsAvailable = true
			items[i].TrackStock = true
			items[i].LowStockThreshold = 10
			if err := db.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		log.Println("sample menu items inserted")
	}

	settings := map[string]string{
		"tax_rate":           "5",
		"currency":           "SAR",
		"restaurant_name":    "Restaurant POS",
		"restaurant_address": "",
		"restaurant_phone":   "",
	}
	for k, v := range settings {
		row := entity.Setting{Key: k}
		if err := db.Where(entity.Setting{Key: k}).
			Attrs(entity.Setting{Value: v}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
