package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kinesiszgz/kinesis-backend/internal/infra/database"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/handlers"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/middleware"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/mail"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/queue"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a Postgres: %v", err)
	}
	defer db.Close()

	// 1. Broker de mensajes (opcional: sin él, los leads se guardan
	// igual pero nadie recibe el correo de aviso)
	var rabbitConn *amqp.Connection
	var producer *queue.RabbitMQProducer
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ no disponible, se continúa sin notificaciones: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

			// 2. Worker de notificaciones (consume la cola y envía el email)
			mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
			if mailPort == 0 {
				mailPort = 587
			}
			mailSender := mail.NewEmailSender(
				os.Getenv("MAIL_HOST"), mailPort,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				os.Getenv("MAIL_FROM"), os.Getenv("LEADS_NOTIFY_TO"),
				database.NewSiteSettingRepository(db),
			)
			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
		}
	}

	// 3. Repositorios
	businessModelRepo := database.NewBusinessModelRepository(db)
	programRepo := database.NewProgramRepository(db)
	instructorRepo := database.NewInstructorRepository(db)
	specialtyRepo := database.NewInstructorSpecialtyRepository(db)
	pricingRepo := database.NewPricingTierRepository(db)
	scheduleRepo := database.NewScheduleSlotRepository(db)
	faqRepo := database.NewFaqRepository(db)
	legalRepo := database.NewLegalPageRepository(db)
	pageRepo := database.NewPageContentRepository(db)
	settingRepo := database.NewSiteSettingRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 4. UseCases
	var leadProducer usecase.LeadEventProducer
	if producer != nil {
		leadProducer = producer
	}
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, leadProducer)

	// 5. Handlers
	businessModelHandler := handlers.NewBusinessModelHandler(businessModelRepo)
	programHandler := handlers.NewProgramHandler(programRepo)
	instructorHandler := handlers.NewInstructorHandler(instructorRepo, specialtyRepo)
	pricingHandler := handlers.NewPricingTierHandler(pricingRepo)
	scheduleHandler := handlers.NewScheduleSlotHandler(scheduleRepo)
	faqHandler := handlers.NewFaqHandler(faqRepo)
	legalHandler := handlers.NewLegalPageHandler(legalRepo)
	pageHandler := handlers.NewPageContentHandler(pageRepo)
	settingHandler := handlers.NewSiteSettingHandler(settingRepo)
	leadHandler := handlers.NewLeadHandler(captureLeadUC, leadRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	cmsToken := os.Getenv("CMS_TOKEN")
	if cmsToken == "" {
		log.Println("⚠️ CMS_TOKEN vacío: las rutas de escritura del CMS rechazarán todo")
	}
	requireStaff := middleware.RequireStaff(cmsToken)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Con bearer válido las lecturas pueden pedir ?includeUnpublished=true;
		// sin él siguen siendo anónimas (nunca un 401 en la web pública)
		r.Use(middleware.OptionalStaff(cmsToken))

		// Lecturas públicas (la web de marketing)
		r.Get("/business-models", businessModelHandler.List)
		r.Get("/business-models/{id}", businessModelHandler.Get)
		r.Get("/business-models/slug/{slug}", businessModelHandler.GetBySlug)
		r.Get("/programs", programHandler.List)
		r.Get("/programs/{id}", programHandler.Get)
		r.Get("/programs/slug/{slug}", programHandler.GetBySlug)
		r.Get("/instructors", instructorHandler.List)
		r.Get("/instructors/{id}", instructorHandler.Get)
		r.Get("/instructor-specialties", instructorHandler.ListSpecialties)
		r.Get("/pricing-tiers", pricingHandler.List)
		r.Get("/pricing-tiers/{id}", pricingHandler.Get)
		r.Get("/schedule-slots", scheduleHandler.List)
		r.Get("/schedule-slots/{id}", scheduleHandler.Get)
		r.Get("/faqs", faqHandler.List)
		r.Get("/faqs/{id}", faqHandler.Get)
		r.Get("/legal", legalHandler.List)
		// Las páginas se direccionan públicamente por slug, no por id
		r.Get("/legal/{slug}", legalHandler.GetBySlug)
		r.Get("/pages", pageHandler.List)
		r.Get("/pages/{slug}", pageHandler.GetBySlug)
		r.Get("/settings", settingHandler.GetAll)

		// Única escritura pública: el formulario de contacto
		r.Post("/leads", leadHandler.Create)

		// Todo lo demás es del CMS y exige el bearer token
		r.Group(func(r chi.Router) {
			r.Use(requireStaff)

			r.Post("/business-models", businessModelHandler.Create)
			r.Put("/business-models/{id}", businessModelHandler.Update)
			r.Delete("/business-models/{id}", businessModelHandler.Delete)

			r.Post("/programs", programHandler.Create)
			r.Put("/programs/{id}", programHandler.Update)
			r.Delete("/programs/{id}", programHandler.Delete)

			r.Post("/instructors", instructorHandler.Create)
			r.Put("/instructors/{id}", instructorHandler.Update)
			r.Delete("/instructors/{id}", instructorHandler.Delete)
			r.Post("/instructor-specialties", instructorHandler.CreateSpecialty)
			r.Delete("/instructor-specialties/{id}", instructorHandler.DeleteSpecialty)

			r.Post("/pricing-tiers", pricingHandler.Create)
			r.Put("/pricing-tiers/{id}", pricingHandler.Update)
			r.Delete("/pricing-tiers/{id}", pricingHandler.Delete)

			r.Post("/schedule-slots", scheduleHandler.Create)
			r.Put("/schedule-slots/{id}", scheduleHandler.Update)
			r.Delete("/schedule-slots/{id}", scheduleHandler.Delete)

			r.Post("/faqs", faqHandler.Create)
			r.Put("/faqs/{id}", faqHandler.Update)
			r.Delete("/faqs/{id}", faqHandler.Delete)

			r.Post("/legal", legalHandler.Create)
			r.Put("/legal/{id}", legalHandler.Update)
			r.Delete("/legal/{id}", legalHandler.Delete)

			r.Post("/pages", pageHandler.Create)
			r.Put("/pages/{id}", pageHandler.Update)
			r.Delete("/pages/{id}", pageHandler.Delete)

			r.Put("/settings/{key}", settingHandler.Put)

			// La gestión de leads contiene datos personales: solo staff
			r.Get("/leads", leadHandler.List)
			r.Get("/leads/{id}", leadHandler.Get)
			r.Put("/leads/{id}", leadHandler.Update)
			r.Delete("/leads/{id}", leadHandler.Delete)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 API de Kinesis escuchando en el puerto :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
