package configs

import (
	"fmt"
	"log"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.Staff{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed โต๊ะ + เมนูตั้งต้น
func SeedLookups() error {
	db := DB()

	// โต๊ะ T1..T10 (เฉพาะตอนยังไม่มีเลย ไม่ไปทับของจริง)
	var tables int64
	db.Model(&entity.Table{}).Count(&tables)
	if tables == 0 {
		for i := 1; i <= 10; i++ {
			db.Create(&entity.Table{
				Name:   fmt.Sprintf("T%d", i),
				Status: entity.TableAvailable,
			})
		}
	}

	// หมวดเมนู
	var mains, drinks entity.Category
	db.FirstOrCreate(&mains, entity.Category{Name: "Main Dish"})
	db.FirstOrCreate(&drinks, entity.Category{Name: "Drink"})

	// เมนูตัวอย่าง
	var menus int64
	db.Model(&entity.MenuItem{}).Count(&menus)
	if menus == 0 {
		db.Create(&entity.MenuItem{Name: "ข้าวผัดกะเพรา", Price: 60, Available: true, CategoryID: mains.ID})
		db.Create(&entity.MenuItem{Name: "ผัดไทยกุ้งสด", Price: 80, Available: true, CategoryID: mains.ID})
		db.Create(&entity.MenuItem{Name: "ต้มยำกุ้ง", Price: 120, Available: true, CategoryID: mains.ID})
		db.Create(&entity.MenuItem{Name: "ชาเย็น", Price: 30, Available: true, CategoryID: drinks.ID})
		db.Create(&entity.MenuItem{Name: "น้ำเปล่า", Price: 15, Available: true, CategoryID: drinks.ID})
	}

	return nil
}
