package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"churchms_backend/internals/configs"
	AttendanceModel "churchms_backend/internals/features/attendance/model"
	BranchModel "churchms_backend/internals/features/branches/model"
	EventModel "churchms_backend/internals/features/events/model"
	MemberModel "churchms_backend/internals/features/members/model"
	NotifModel "churchms_backend/internals/features/notifications/model"
	PastorModel "churchms_backend/internals/features/pastors/model"
	SettingsModel "churchms_backend/internals/features/settings/model"
	TitheModel "churchms_backend/internals/features/tithes/model"
	UserModel "churchms_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=churchms&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: dsn,
		// keep simple protocol for PgBouncer transaction pooling
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	DB = db
	log.Println("DB connected.")
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

// Migrate keeps the schema in sync with the models. Unique indexes that
// GORM tags cannot express (e.g. LOWER(email) uniqueness on members) live
// in SQL migrations.
func Migrate() {
	if err := DB.AutoMigrate(
		&UserModel.UserModel{},
		&PastorModel.PastorModel{},
		&BranchModel.BranchModel{},
		&MemberModel.MemberModel{},
		&MemberModel.FamilyMemberModel{},
		&TitheModel.TitheModel{},
		&EventModel.EventModel{},
		&AttendanceModel.AttendanceModel{},
		&SettingsModel.ChurchSettingsModel{},
		&NotifModel.NotificationModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("schema migrated.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
