package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"exodus_backend/internals/configs"
	artistModel "exodus_backend/internals/features/music/artists/model"
	orderModel "exodus_backend/internals/features/music/ordering/model"
	playlistModel "exodus_backend/internals/features/music/playlists/model"
	songModel "exodus_backend/internals/features/music/songs/model"
	videoModel "exodus_backend/internals/features/music/videos/model"
	requestModel "exodus_backend/internals/features/public/artistrequest/model"
	newsletterModel "exodus_backend/internals/features/public/newsletter/model"
	authModel "exodus_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=exodus&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[SUCCESS] DB connected.")
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

// Migrate creates or updates every table. The unique indexes on the order
// junction tables are the hard backstop for the ordering invariants, so this
// must run before the app starts serving.
func Migrate() {
	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.PasswordResetTokenModel{},
		&newsletterModel.NewsletterSubscriptionModel{},
		&requestModel.ArtistRequestModel{},
		&artistModel.ArtistModel{},
		&songModel.SongModel{},
		&videoModel.VideoModel{},
		&playlistModel.PlaylistModel{},
		&orderModel.ArtistSongOrderModel{},
		&orderModel.ArtistVideoOrderModel{},
		&orderModel.FeaturedMusicModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[SUCCESS] Database migrated.")
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
