// Maintenance tool for the remote-week database: schema reset, fixture
// seeding for manual testing of the weekly rules, and a plain init check.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dfigueroa/remote-week/internal/config"
	"github.com/dfigueroa/remote-week/internal/database"
	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"github.com/dfigueroa/remote-week/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	var (
		dbPath     = flag.String("db", "", "database path (defaults to DATABASE_PATH)")
		reset      = flag.Bool("reset", false, "delete the database file and recreate the schema")
		prevWeek   = flag.Bool("prev-week", false, "seed a record in the previous week for -user-id on -weekday")
		userID     = flag.Int64("user-id", 0, "target user id for -prev-week")
		weekday    = flag.String("weekday", "jueves", "weekday name for -prev-week (lunes..domingo)")
		mixedWeeks = flag.Bool("mixed-weeks", false, "seed demo users with records over the current and previous weeks")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	path := *dbPath
	if path == "" {
		path = config.Load().DatabasePath
	}

	if *reset {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove database: %v", err)
		}
		log.Printf("Database removed: %s", path)
	}

	db, err := database.New(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Schema verified")

	dm := database.NewInstance(db)

	switch {
	case *prevWeek:
		if err := seedPrevWeek(dm, *userID, *weekday); err != nil {
			log.Fatalf("Failed to seed previous week: %v", err)
		}
	case *mixedWeeks:
		if err := seedMixedWeeks(dm); err != nil {
			log.Fatalf("Failed to seed mixed weeks: %v", err)
		}
	default:
		// Init check only: schema applied and connection works.
		if _, err := dm.User().ListAll(); err != nil {
			log.Fatalf("Database check failed: %v", err)
		}
		log.Println("Database check OK")
	}
}

// seedPrevWeek inserts a record on the given weekday of the previous ISO week
// so the no-repeat rule can be exercised by hand.
func seedPrevWeek(dm contract.DataManager, userID int64, weekday string) error {
	if userID == 0 {
		return fmt.Errorf("-user-id is required")
	}

	idx, ok := domain.WeekdayIndexes[strings.ToLower(strings.TrimSpace(weekday))]
	if !ok {
		return fmt.Errorf("unknown weekday %q", weekday)
	}

	user, err := dm.User().GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	prevStart, _ := domain.WeekBounds(time.Now().AddDate(0, 0, -7))
	d := prevStart.AddDate(0, 0, idx)

	record := &entity.Record{
		UserID:  userID,
		Date:    domain.FormatISODate(d),
		WeekDay: domain.WeekdayName(d),
	}
	if err := dm.Record().Create(record); err != nil {
		if err == domain.ErrDuplicateRecord {
			log.Printf("Record already exists for %s, skipping", record.Date)
			return nil
		}
		return err
	}

	log.Printf("Seeded record id=%d user=%s date=%s day=%s", record.ID, user.Name, record.Date, record.WeekDay)
	return nil
}

// seedMixedWeeks creates a demo user set with days spread over the current
// and previous weeks, matching a realistic mid-week state.
func seedMixedWeeks(dm contract.DataManager) error {
	demo := []struct {
		name    string
		docket  string
		curDay  int // weekday index in the current week, -1 for none
		prevDay int // weekday index in the previous week, -1 for none
	}{
		{"Ana Gómez", "AG-104", domain.Tuesday, domain.Thursday},
		{"Bruno Díaz", "BD-221", domain.Wednesday, -1},
		{"Carla Ruiz", "CR-317", -1, domain.Friday},
		{"Diego Soto", "DS-402", domain.Friday, domain.Friday},
		{"Elena Vidal", "EV-518", -1, -1},
	}

	curStart, _ := domain.WeekBounds(time.Now())
	prevStart := curStart.AddDate(0, 0, -7)

	for _, d := range demo {
		user := &entity.User{Name: d.name, Docket: d.docket}
		if err := dm.User().Create(user); err != nil {
			if err == domain.ErrDuplicateUser {
				log.Printf("User %s already exists, skipping", d.docket)
				continue
			}
			return err
		}

		for _, wk := range []struct {
			start time.Time
			day   int
		}{{curStart, d.curDay}, {prevStart, d.prevDay}} {
			if wk.day < 0 {
				continue
			}
			day := wk.start.AddDate(0, 0, wk.day)
			record := &entity.Record{
				UserID:  user.ID,
				Date:    domain.FormatISODate(day),
				WeekDay: domain.WeekdayName(day),
			}
			if err := dm.Record().Create(record); err != nil && err != domain.ErrDuplicateRecord {
				return err
			}
		}
		log.Printf("Seeded user id=%d name=%s", user.ID, user.Name)
	}

	return nil
}
