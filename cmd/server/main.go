package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"hospedaje/internal/api"
	"hospedaje/internal/auth"
	"hospedaje/internal/repository"
	"hospedaje/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	roomRepo := repository.NewRoomRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db, roomRepo, requestRepo)
	guestRepo := repository.NewGuestRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	jobRepo := repository.NewJobRepository(db)

	authHandler := api.NewAuthHandler(service.NewAuthService(operatorRepo))
	roomHandler := api.NewRoomHandler(service.NewRoomService(roomRepo))
	requestHandler := api.NewRequestHandler(service.NewRequestService(requestRepo))
	guestHandler := api.NewGuestHandler(service.NewGuestService(guestRepo))
	vehicleHandler := api.NewVehicleHandler(service.NewVehicleService(vehicleRepo))
	linkHandler := api.NewLinkHandler(service.NewLinkService(linkRepo))
	assignmentHandler := api.NewAssignmentHandler(service.NewAssignmentService(assignmentRepo))
	timelineHandler := api.NewTimelineHandler(service.NewTimelineService(&timelineRepo{roomRepo, assignmentRepo}))
	dailyOpsHandler := api.NewDailyOpsHandler(service.NewDailyOpsService(&dailyOpsRepo{requestRepo, linkRepo, assignmentRepo}))

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.Middleware)

	protected.HandleFunc("/rooms", roomHandler.ListRooms).Methods("GET")
	protected.HandleFunc("/rooms", roomHandler.CreateRoom).Methods("POST")
	protected.HandleFunc("/rooms", roomHandler.UpdateRoom).Methods("PUT")
	protected.HandleFunc("/rooms", roomHandler.DeleteRoom).Methods("DELETE")

	protected.HandleFunc("/accommodation-requests", requestHandler.ListRequests).Methods("GET")
	protected.HandleFunc("/accommodation-requests", requestHandler.CreateRequest).Methods("POST")
	protected.HandleFunc("/accommodation-requests", requestHandler.UpdateRequest).Methods("PUT")
	protected.HandleFunc("/accommodation-requests", requestHandler.DeleteRequest).Methods("DELETE")

	protected.HandleFunc("/guests", guestHandler.ListGuests).Methods("GET")
	protected.HandleFunc("/guests", guestHandler.CreateGuest).Methods("POST")
	protected.HandleFunc("/guests", guestHandler.UpdateGuest).Methods("PUT")
	protected.HandleFunc("/guests", guestHandler.DeleteGuest).Methods("DELETE")

	protected.HandleFunc("/vehicles", vehicleHandler.ListVehicles).Methods("GET")
	protected.HandleFunc("/vehicles", vehicleHandler.CreateVehicle).Methods("POST")
	protected.HandleFunc("/vehicles", vehicleHandler.UpdateVehicle).Methods("PUT")
	protected.HandleFunc("/vehicles", vehicleHandler.DeleteVehicle).Methods("DELETE")

	protected.HandleFunc("/links", linkHandler.ListLinks).Methods("GET")
	protected.HandleFunc("/links", linkHandler.CreateLink).Methods("POST")
	protected.HandleFunc("/links", linkHandler.UpdateLink).Methods("PUT")
	protected.HandleFunc("/links", linkHandler.DeleteLink).Methods("DELETE")

	protected.HandleFunc("/room-assignments", assignmentHandler.ListAssignments).Methods("GET")
	protected.HandleFunc("/room-assignments", assignmentHandler.CreateAssignment).Methods("POST")
	protected.HandleFunc("/room-assignments", assignmentHandler.UpdateAssignment).Methods("PUT")
	protected.HandleFunc("/room-assignments", assignmentHandler.DeleteAssignment).Methods("DELETE")

	protected.HandleFunc("/room-timeline", timelineHandler.GetTimeline).Methods("GET")
	protected.HandleFunc("/daily-operations", dailyOpsHandler.GetDailyOperations).Methods("GET")

	jobService := service.NewJobService(jobRepo)
	c := cron.New()
	if _, err := c.AddFunc("15 3 * * *", func() {
		if err := jobService.RunNightly(); err != nil {
			log.Printf("Nightly job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule nightly job: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}

// timelineRepo and dailyOpsRepo assemble the per-service repository views the
// services declare as interfaces.
type timelineRepo struct {
	*repository.RoomRepository
	*repository.AssignmentRepository
}

type dailyOpsRepo struct {
	*repository.RequestRepository
	*repository.LinkRepository
	*repository.AssignmentRepository
}
