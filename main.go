package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-hosteldesk/cronjobs"
	"go-hosteldesk/db"
	"go-hosteldesk/nlp"
	"go-hosteldesk/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	store := db.NewFirestoreStore(firestoreClient)

	// Initialize cron jobs
	cronjobs.InitCronJobs(store)

	// The Natural Language client is optional; the cloud cross-check endpoint
	// answers 503 when it is absent.
	nlpClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Fatalf("Failed to create Natural Language client: %v", err)
	}
	if nlpClient != nil {
		defer nlpClient.Close()
		fmt.Println("Natural Language client ready")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store, nlpClient)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
