package config

import (
	"fmt"
	"log"

	"peoplepulse/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "peoplepulse"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	log.Println("Database connected")

	if err := Migrate(db); err != nil {
		panic("auto migration failed: " + err.Error())
	}

	DB = db
}

// Migrate creates/updates all tables. Shared with the test setup, which runs
// it against an in-memory sqlite database instead.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Tenant{},
		&model.Member{},
		&model.AttendanceRecord{},
		&model.LeaveBalance{},
		&model.LeaveRequest{},
		&model.SalarySlip{},
		&model.Announcement{},
		&model.Notification{},
	)
}
