package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/golf-scorecard/internal/course"
	"github.com/mauv0809/golf-scorecard/internal/database"
	"github.com/mauv0809/golf-scorecard/internal/game"
	"github.com/mauv0809/golf-scorecard/internal/leaderboard"
	"github.com/mauv0809/golf-scorecard/internal/metrics"
	"github.com/mauv0809/golf-scorecard/internal/player"
	"github.com/mauv0809/golf-scorecard/internal/scorecard"
	"github.com/prometheus/client_golang/prometheus"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "golf.db"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var kullo = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5}

// randomHoles plays a round around par: mostly pars and bogeys, the odd birdie or double.
func randomHoles(rng *rand.Rand, pars []int) []int {
	holes := make([]int, len(pars))
	for i, par := range pars {
		holes[i] = par + rng.Intn(4) - 1
	}
	return holes
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	courses := course.New(db)
	players := player.New(db)
	games := game.New(db)
	scorecards := scorecard.New(db)

	c := &course.Course{Name: "Kullo Golf", Pars: kullo}
	if err := courses.Save(c); err != nil {
		log.Fatalf("Failed to insert course: %s", err)
	}
	log.Info("Inserted course", "courseID", c.ID, "par", c.CountTotal)

	seeded := make([]*player.Player, 0, 4)
	for _, name := range [][2]string{{"Seeder", "Aho"}, {"Seeder", "Berg"}, {"Seeder", "Carlsson"}, {"Seeder", "Dahl"}} {
		p := &player.Player{FirstName: name[0], LastName: name[1]}
		if err := players.Save(p); err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.Name(), err)
		}
		seeded = append(seeded, p)
	}
	log.Info("Inserted players", "count", len(seeded))

	g := &game.Game{Name: "Seeded Open", PlayedOn: time.Now().Truncate(24 * time.Hour)}
	if err := games.Save(g); err != nil {
		log.Fatalf("Failed to insert game: %s", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	startTime := time.Now()
	cards := 0
	for _, roundName := range []string{"Round 1", "Round 2"} {
		r := &game.Round{GameID: g.ID, Name: roundName, Course: course.Course{ID: c.ID}}
		if err := games.SaveRound(r); err != nil {
			log.Fatalf("Failed to insert round %s: %s", roundName, err)
		}
		for i, p := range seeded {
			// The last player skips the second round so the leaderboard shows padding.
			if r.Ordinal == 2 && i == len(seeded)-1 {
				continue
			}
			card := &scorecard.Scorecard{RoundID: r.ID, Player: *p, Holes: randomHoles(rng, kullo)}
			if err := scorecards.Save(card); err != nil {
				log.Fatalf("Failed to insert scorecard for %s: %s", p.Name(), err)
			}
			cards++
		}
	}
	log.Info("Inserted scorecards", "count", cards, "duration", time.Since(startTime))

	agg := leaderboard.New(games, scorecards, metrics.NewService(prometheus.NewRegistry()))
	board, err := agg.Compute(g.ID)
	if err != nil {
		log.Fatalf("Failed to compute leaderboard: %s", err)
	}
	for i, entry := range board.Entries {
		log.Info("Standing", "rank", i+1, "player", entry.PlayerName, "scores", entry.Scores, "total", entry.Total)
	}
	log.Info("Seeding complete", "gameID", g.ID)
}
