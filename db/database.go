package db

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"airline-ops-server/config"
	"airline-ops-server/model"
)

var db *gorm.DB
var testMode string

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	// save testMode
	testMode = cfg.Mode

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading credentials from environment")
	}

	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")

	dbName := cfg.DB.Name
	if testMode == "test" {
		dbName = cfg.DB.TestName
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.DB.Host, user, password, dbName, cfg.DB.Port)

	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		// can't connect to the db, the server should stop
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// InitInMemoryDB opens a named in-memory SQLite database and migrates the
// schema, used by tests so they run without a PostgreSQL instance. The name
// keeps databases of different tests separate; shared cache keeps all pooled
// connections of one test on the same database.
func InitInMemoryDB(name string) (*gorm.DB, error) {
	testMode = "test"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	var err error
	db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Airport{},
		&model.Route{},
		&model.Aircraft{},
		&model.CrewMember{},
		&model.FlightInstance{},
		&model.CrewAssignmentMember{},
		&model.MaintenanceJob{},
		&model.JobEngineer{},
		&model.Part{},
		&model.Report{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
	err = sqlDB.Close()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	// don't delete airports, loaded as reference data
	tables := []string{
		"crew_assignment", "flight_instance", "job_engineer", "report",
		"maintenance_job", "part", "crew_member", "aircraft", "route",
	}
	for _, table := range tables {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
