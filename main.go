package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"curriculum-service/configs"
	"curriculum-service/internal/curriculum"
	"curriculum-service/internal/db"
	"curriculum-service/internal/event"
	"curriculum-service/internal/generator"
	"curriculum-service/internal/handlers"
	"curriculum-service/internal/performance"
	"curriculum-service/internal/schedule"
	"curriculum-service/internal/store"
)

func main() {
	cfg := configs.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Storage backend: mongo when configured, in-memory otherwise.
	var st store.Store
	if cfg.MongoURI != "" {
		db.InitMongo(cfg.MongoURI)
		st = store.NewMongoStore(db.Client.Database(cfg.MongoDatabase))
	} else {
		log.Println("MONGO_URI not set, using in-memory store")
		st = store.NewMemoryStore()
	}

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange, cfg.ServiceName)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Task generator: LLM endpoint when configured, static rules otherwise.
	var tasks generator.TaskGenerator
	if cfg.LLMBaseURL != "" {
		tasks = generator.NewLLMGenerator(cfg)
		log.Printf("Using %s task generator at %s", cfg.LLMProvider, cfg.LLMBaseURL)
	} else {
		tasks = generator.NewStaticGenerator()
		log.Println("BASE_URL not set, using static task generator")
	}

	curriculumGenerator := curriculum.NewGenerator(
		schedule.NewAnalyzer(nil),
		performance.NewAnalyzer(nil),
		tasks,
		st,
	)

	studentHandler := handlers.NewStudentHandler(st)
	timetableHandler := handlers.NewTimetableHandler(st)
	curriculumHandler := handlers.NewCurriculumHandler(curriculumGenerator)
	demoHandler := handlers.NewDemoHandler(st)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	describe := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Smart Curriculum Generator API",
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"endpoints": gin.H{
				"POST /api/register-student":      "Register new student",
				"POST /api/update-performance":    "Update student performance",
				"POST /api/set-timetable":         "Set student timetable",
				"POST /api/set-section-timetable": "Set shared section timetable",
				"POST /api/generate-curriculum":   "Generate daily curriculum",
				"GET /api/student/:id":            "Get student profile",
				"POST /api/demo-setup":            "Setup demo data for testing",
			},
		})
	}
	r.GET("/", describe)

	api := r.Group("/api")
	{
		api.GET("/", describe)

		api.POST("/register-student", func(c *gin.Context) {
			studentHandler.RegisterStudent(c)
			if publisher != nil {
				publisher.Publish("student.registered", gin.H{"timestamp": time.Now()})
			}
		})

		api.POST("/update-performance", func(c *gin.Context) {
			studentHandler.UpdatePerformance(c)
			if publisher != nil {
				publisher.Publish("student.performance_updated", gin.H{"timestamp": time.Now()})
			}
		})

		api.GET("/student/:id", func(c *gin.Context) {
			studentHandler.GetStudent(c)
			if publisher != nil {
				publisher.Publish("student.viewed", gin.H{"id": c.Param("id")})
			}
		})

		api.POST("/set-timetable", func(c *gin.Context) {
			timetableHandler.SetTimetable(c)
			if publisher != nil {
				publisher.Publish("timetable.set", gin.H{"timestamp": time.Now()})
			}
		})

		api.POST("/set-section-timetable", func(c *gin.Context) {
			timetableHandler.SetSectionTimetable(c)
			if publisher != nil {
				publisher.Publish("timetable.section_set", gin.H{"timestamp": time.Now()})
			}
		})

		api.POST("/generate-curriculum", func(c *gin.Context) {
			curriculumHandler.GenerateCurriculum(c)
			if publisher != nil {
				publisher.Publish("curriculum.generated", gin.H{"timestamp": time.Now()})
			}
		})

		api.POST("/demo-setup", demoHandler.DemoSetup)
	}

	log.Printf("Starting %s on port %s", cfg.ServiceName, cfg.Port)
	r.Run(":" + cfg.Port)
}
