package main

import (
	"log"
	"os"
	"time"

	"jukugi-bokujo-be/internal/model"
	"jukugi-bokujo-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds a demo account with a starter set of agents and topics so a fresh
// install has something to deliberate about.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo user...")

	var demoUser model.User
	if err := db.Where("email = ?", "demo@jukugi-bokujo.local").First(&demoUser).Error; err == nil {
		log.Println("Demo user already exists, skipping user creation...")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing demo password: %v", err)
		}
		hashStr := string(hash)
		now := time.Now()

		demoUser = model.User{
			Id:              uuid.New(),
			Email:           "demo@jukugi-bokujo.local",
			PasswordHash:    &hashStr,
			DisplayName:     "Demo User",
			Role:            "user",
			Status:          "active",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
		}
		if err := db.Create(&demoUser).Error; err != nil {
			log.Fatalf("Error creating demo user: %v", err)
		}
		log.Printf("Created demo user: %s", demoUser.Email)
	}

	log.Println("Seeding demo agents...")

	agents := []model.Agent{
		{
			UserId:  demoUser.Id,
			Name:    "楽観主義者のハル",
			Persona: "新しいアイデアの可能性を最大限に評価する楽観的な起業家。まず「できる理由」を探す。",
			Tone:    "明るく前向き",
			Stance:  "推進派",
			Traits:  datatypes.JSON([]byte(`{"curiosity": 9, "risk_tolerance": 8}`)),
		},
		{
			UserId:  demoUser.Id,
			Name:    "慎重派のシズク",
			Persona: "リスクとコストを先に洗い出す保守的なアナリスト。根拠のない楽観を許さない。",
			Tone:    "冷静で簡潔",
			Stance:  "懐疑派",
			Traits:  datatypes.JSON([]byte(`{"curiosity": 5, "risk_tolerance": 2}`)),
		},
		{
			UserId:  demoUser.Id,
			Name:    "現場目線のゲン",
			Persona: "実際に手を動かす立場から実現可能性を検証する職人気質のエンジニア。",
			Tone:    "ぶっきらぼうだが誠実",
			Stance:  "中立",
			Traits:  datatypes.JSON([]byte(`{"curiosity": 7, "risk_tolerance": 5}`)),
		},
	}

	for _, a := range agents {
		var existing model.Agent
		if err := db.Where("user_id = ? AND name = ?", a.UserId, a.Name).First(&existing).Error; err == nil {
			log.Printf("Agent '%s' already exists, skipping...", a.Name)
			continue
		}
		a.Id = uuid.New()
		if err := db.Create(&a).Error; err != nil {
			color.Red("Error creating agent '%s': %v", a.Name, err)
		} else {
			color.Green("Created agent: %s", a.Name)
		}
	}

	log.Println("Seeding demo topics...")

	topics := []model.Topic{
		{
			UserId:      demoUser.Id,
			Title:       "リモートワークを恒久化すべきか",
			Description: "全社的なリモートワーク制度の恒久化について、生産性・採用・コストの観点から検討する。",
		},
		{
			UserId:      demoUser.Id,
			Title:       "新製品の価格戦略",
			Description: "サブスクリプション型とワンタイム課金のどちらを採用すべきか。",
		},
	}

	for _, t := range topics {
		var existing model.Topic
		if err := db.Where("user_id = ? AND title = ?", t.UserId, t.Title).First(&existing).Error; err == nil {
			log.Printf("Topic '%s' already exists, skipping...", t.Title)
			continue
		}
		t.Id = uuid.New()
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating topic '%s': %v", t.Title, err)
		} else {
			color.Green("Created topic: %s", t.Title)
		}
	}

	color.Green("✅ Seeding completed!")
}
