// Seeds a demo dataset: a handful of adoptable animals, a pet-care course
// with lessons and steps, a standalone quiz with its badges, and a course
// quiz. Safe to re-run; it skips any table that already has rows.
//
// Usage: go run scripts/seed_demo_data.go

package main

import (
	"log"
	"time"

	"pawlearn_backend/internal/config"
	"pawlearn_backend/internal/model"
	"pawlearn_backend/pkg/database"
	"pawlearn_backend/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedAnimals(db)
	seedCourseContent(db)
	seedQuizzes(db)

	log.Println("Demo data seeding finished")
}

func tableEmpty(db *gorm.DB, m interface{}) bool {
	var n int64
	db.Model(m).Count(&n)
	return n == 0
}

func dob(years, months int) time.Time {
	return time.Now().AddDate(-years, -months, 0)
}

func seedAnimals(db *gorm.DB) {
	if !tableEmpty(db, &model.Animal{}) {
		log.Println("Animals already present, skipping")
		return
	}

	animals := []model.Animal{
		{
			Name: "Biscuit", Species: "Dog", Breed: "Beagle",
			DateOfBirth: dob(2, 3), Gender: "Male",
			Temperament: "Curious, food motivated",
			IdealHome:   "House with a fenced garden",
			LifestyleNeeds: "Two long walks a day and scent games",
			VaccinationStatus: "Up to date", AdoptionStatus: "Available",
			Images: []model.AnimalImage{
				{ImageType: model.ImageTypeFront, ImagePath: "/images/animals/biscuit.jpg"},
			},
		},
		{
			Name: "Clementine", Species: "Cat", Breed: "Tabby",
			DateOfBirth: dob(4, 0), Gender: "Female",
			Temperament: "Independent, affectionate on her own terms",
			IdealHome:   "Quiet flat, no small children",
			LifestyleNeeds: "Window perch and a scratching post",
			VaccinationStatus: "Up to date", HealthIssues: "Mild dental tartar",
			AdoptionStatus: "Available",
			Images: []model.AnimalImage{
				{ImageType: model.ImageTypeFront, ImagePath: "/images/animals/clementine.jpg"},
			},
		},
		{
			Name: "Pepper", Species: "Rabbit", Breed: "Mini Lop",
			DateOfBirth: dob(1, 1), Gender: "Female",
			Temperament: "Gentle, startles at loud noises",
			IdealHome:   "Indoor home with a bonded companion",
			LifestyleNeeds: "Unlimited hay and daily floor time",
			VaccinationStatus: "RHDV2 vaccinated", AdoptionStatus: "Pending",
		},
	}

	if err := db.Create(&animals).Error; err != nil {
		log.Fatalf("Failed to seed animals: %v", err)
	}
	log.Printf("Seeded %d animals", len(animals))
}

func seedCourseContent(db *gorm.DB) {
	if !tableEmpty(db, &model.Course{}) {
		log.Println("Courses already present, skipping")
		return
	}

	course := model.Course{
		Title:       "First Week With Your New Pet",
		Summary:     "Settling a rescue animal into your home, day by day.",
		CoverImage:  "/images/courses/first-week.jpg",
		CourseOrder: 1,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	lessons := []model.Lesson{
		{CourseID: course.CourseID, Title: "Preparing Your Home", Summary: "What to set up before arrival day.", LessonOrder: 1},
		{CourseID: course.CourseID, Title: "The First 48 Hours", Summary: "Reading stress signals and building trust.", LessonOrder: 2},
	}
	if err := db.Create(&lessons).Error; err != nil {
		log.Fatalf("Failed to seed lessons: %v", err)
	}

	steps := []model.LessonStep{
		{LessonID: lessons[0].LessonID, StepOrder: 1, StepType: "text", StepText: "Choose a quiet room as the decompression space."},
		{LessonID: lessons[0].LessonID, StepOrder: 2, StepType: "video", StepText: "Walk-through of a pet-proofed living room.", MediaLink: "/media/lessons/pet-proofing.mp4"},
		{LessonID: lessons[0].LessonID, StepOrder: 3, StepType: "reflection", StepText: "List three hazards you found in your own home.", Question: "Which hazard surprised you most?"},
		{LessonID: lessons[1].LessonID, StepOrder: 1, StepType: "text", StepText: "Keep introductions short and let the animal retreat."},
		{LessonID: lessons[1].LessonID, StepOrder: 2, StepType: "text", StepText: "Feed at the same times each day to build routine."},
	}
	if err := db.Create(&steps).Error; err != nil {
		log.Fatalf("Failed to seed lesson steps: %v", err)
	}

	log.Printf("Seeded 1 course, %d lessons, %d steps", len(lessons), len(steps))
}

func seedQuizzes(db *gorm.DB) {
	if !tableEmpty(db, &model.Quiz{}) {
		log.Println("Quizzes already present, skipping")
		return
	}

	// Standalone quick quiz, no course attached.
	quick := model.Quiz{
		Title:       "Are You Ready to Adopt?",
		Description: "A quick check of adoption basics.",
	}
	if err := db.Create(&quick).Error; err != nil {
		log.Fatalf("Failed to seed standalone quiz: %v", err)
	}

	var course model.Course
	if err := db.Order("course_id ASC").First(&course).Error; err != nil {
		log.Fatalf("Failed to load seeded course: %v", err)
	}
	courseQuiz := model.Quiz{
		CourseID:    &course.CourseID,
		Title:       "First Week Knowledge Check",
		Description: "Covers the settling-in material.",
	}
	if err := db.Create(&courseQuiz).Error; err != nil {
		log.Fatalf("Failed to seed course quiz: %v", err)
	}

	seedQuestions(db, quick.QuizID, []demoQuestion{
		{
			Text:    "How long should a new rescue dog decompress before meeting visitors?",
			Options: []string{"A few hours", "At least a few days", "No decompression needed"},
			Correct: 1,
		},
		{
			Text:    "What does a tucked tail usually signal?",
			Options: []string{"Excitement", "Fear or stress", "Hunger"},
			Correct: 1,
		},
	})
	seedQuestions(db, courseQuiz.QuizID, []demoQuestion{
		{
			Text:    "What makes a good decompression space?",
			Options: []string{"The busiest room in the house", "A quiet room the animal can retreat to", "The garden"},
			Correct: 1,
		},
	})

	badges := []model.Badge{
		{QuizID: quick.QuizID, BadgeName: "Adoption Ready", BadgeImage: "/images/badges/adoption-ready.png", MinScore: 50},
		{QuizID: quick.QuizID, BadgeName: "Perfect Prep", BadgeImage: "/images/badges/perfect-prep.png", MinScore: 100},
		{QuizID: courseQuiz.QuizID, BadgeName: "First Week Graduate", BadgeImage: "/images/badges/first-week.png", MinScore: 50},
	}
	if err := db.Create(&badges).Error; err != nil {
		log.Fatalf("Failed to seed badges: %v", err)
	}

	log.Println("Seeded quizzes, questions and badges")
}

type demoQuestion struct {
	Text    string
	Options []string
	Correct int
}

func seedQuestions(db *gorm.DB, quizID uint, questions []demoQuestion) {
	for _, q := range questions {
		question := model.QuizQuestion{QuizID: quizID, QuestionText: q.Text}
		if err := db.Create(&question).Error; err != nil {
			log.Fatalf("Failed to seed question: %v", err)
		}
		for i, text := range q.Options {
			option := model.QuizOption{
				QuestionID: question.QuestionID,
				OptionText: text,
				IsCorrect:  i == q.Correct,
			}
			if err := db.Create(&option).Error; err != nil {
				log.Fatalf("Failed to seed option: %v", err)
			}
		}
	}
}
