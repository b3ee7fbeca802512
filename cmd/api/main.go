package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"charlygames/internal/adapter/api"
	"charlygames/internal/adapter/api/handler"
	apimiddleware "charlygames/internal/adapter/api/middleware"
	"charlygames/internal/adapter/api/router"
	"charlygames/internal/adapter/repository"
	domainrepo "charlygames/internal/domain/repository"
	"charlygames/internal/infrastructure/events"
	"charlygames/internal/infrastructure/firebase"
	"charlygames/internal/infrastructure/storage"
	"charlygames/internal/usecase"
	"charlygames/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	bandRepo := repository.NewFirestorePriceBandRepository(firestoreClient)
	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient)
	subscriberRepo := repository.NewFirestoreSubscriberRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	hub := events.NewHub()
	hub.Start(ctx)

	catalogStore := usecase.NewCatalogStore(gameRepo)
	gamesChanged, err := json.Marshal(events.ChangeEvent{Table: "games", Event: "*"})
	if err != nil {
		log.Fatalf("Failed to encode change event: %v", err)
	}
	catalogStore.OnChange(func() {
		hub.Broadcast(gamesChanged)
	})
	catalogStore.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)
	catalogUseCase := usecase.NewCatalogUseCase(gameRepo, catalogStore)
	pricingUseCase := usecase.NewPricingUseCase(bandRepo)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, gameRepo)
	subscriberUseCase := usecase.NewSubscriberUseCase(subscriberRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)

	handler.Setup(authUseCase, catalogUseCase, pricingUseCase, ratingUseCase, subscriberUseCase, contactUseCase)

	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		handler.SetupUploadHandler(storageClient)
	}

	// The flat-REST surface can run against a local JSON document instead of
	// the gateway, for environments without a Firestore project.
	var restRepo domainrepo.GameRepository = gameRepo
	if cfg.GamesSource == "file" {
		restRepo = repository.NewFileGameRepository(cfg.GamesFilePath)
	}
	restHandler := handler.NewRestGamesHandler(restRepo)

	eventsHandler := handler.NewEventsHandler(hub)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupRestGamesRouter(e, restHandler)
	router.SetupEventsRouter(e, eventsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
