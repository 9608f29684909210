package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"edubridge_backend/internals/configs"
	attendanceModel "edubridge_backend/internals/features/school/attendance/model"
	documentModel "edubridge_backend/internals/features/school/documents/model"
	leaveModel "edubridge_backend/internals/features/school/leaves/model"
	userModel "edubridge_backend/internals/features/users/user/model"
)

var DB *gorm.DB

// ConnectDB opens the relational store. A DATABASE_URL switches to Postgres
// (PreferSimpleProtocol, PgBouncer-safe); otherwise the store is a single
// sqlite file at DB_PATH.
func ConnectDB() {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{Logger: configs.NewGormLogger()}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		log.Println("[INFO] connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		log.Printf("[INFO] opening sqlite database at %s", configs.DBPath)
		db, err = gorm.Open(sqlite.Open(configs.DBPath), cfg)
	}
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}

	DB = db
	log.Println("[INFO] DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the four record tables.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&leaveModel.LeaveModel{},
		&documentModel.DocumentModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] migrations applied")
}
