package database

import (
	"log"

	"cinema_booking/model"

	"gorm.io/gorm"
)

// SeedData tạo dữ liệu mẫu cho rạp, phòng và menu bắp nước.
func SeedData(db *gorm.DB) {
	theaters := []model.Theater{
		{Name: "Cinema Quận 1", City: "Hồ Chí Minh", Address: "123 Nguyễn Huệ, Quận 1", Hotline: "1900 1234"},
		{Name: "Cinema Hà Đông", City: "Hà Nội", Address: "45 Trần Phú, Hà Đông", Hotline: "1900 5678"},
	}
	for i := range theaters {
		if err := db.Where(model.Theater{Name: theaters[i].Name}).FirstOrCreate(&theaters[i]).Error; err != nil {
			log.Println("failed to seed theater:", theaters[i].Name, "error:", err)
		}
	}

	if len(theaters) > 0 && theaters[0].ID > 0 {
		rooms := []model.Room{
			{TheaterId: theaters[0].ID, Name: "Phòng 1", Type: "2D", Capacity: 80},
			{TheaterId: theaters[0].ID, Name: "Phòng 2", Type: "3D", Capacity: 80},
			{TheaterId: theaters[0].ID, Name: "Phòng IMAX", Type: "IMAX", Capacity: 120},
		}
		for _, room := range rooms {
			if err := db.Where(model.Room{TheaterId: room.TheaterId, Name: room.Name}).
				FirstOrCreate(&room).Error; err != nil {
				log.Println("failed to seed room:", room.Name, "error:", err)
			}
		}
	}

	foods := []model.FoodItem{
		{Name: "Bắp rang bơ (L)", Category: "popcorn", Price: 69000},
		{Name: "Coca-Cola (L)", Category: "drink", Price: 39000},
		{Name: "Combo 2 người", Category: "combo", Price: 159000},
	}
	for _, food := range foods {
		if err := db.Where(model.FoodItem{Name: food.Name}).FirstOrCreate(&food).Error; err != nil {
			log.Println("failed to seed food item:", food.Name, "error:", err)
		}
	}
}
