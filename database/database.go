package database

import (
	"os"

	"portfolio-backend/internal/domain/exhibitions"
	"portfolio-backend/internal/domain/newsletter"
	"portfolio-backend/internal/domain/press"
	"portfolio-backend/internal/domain/site"
	"portfolio-backend/internal/domain/works"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := Open(dsn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("AutoMigrate error: %v", err)
	}

	logrus.Info("Connected and migrated successfully")
}

// Open connects to Postgres. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, eris.Wrap(err, "open postgres")
	}
	return db, nil
}

// Migrate runs AutoMigrate for every domain model. Tests call it against
// an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// works
		&works.Collection{},
		&works.Section{},
		&works.Artwork{},

		// exhibitions & press
		&exhibitions.Exhibition{},
		&press.Critic{},

		// site content
		&site.ContentBlock{},

		// newsletter
		&newsletter.Subscriber{},
	)
}
