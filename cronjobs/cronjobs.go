package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-hosteldesk/db"
)

const digestTimeout = 30 * time.Second

// InitCronJobs starts the scheduled jobs. Currently a nightly complaint
// digest so the warden's morning report does not need a manual query.
func InitCronJobs(store db.Store) {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Complaint Digest: every day at 00:05
	_, err := c.AddFunc("5 0 * * *", func() {
		log.Println("CronJob: Complaint Digest Running")
		runComplaintDigest(store)
	})
	if err != nil {
		log.Println("Error scheduling Complaint Digest:", err)
	}

	c.Start()
}

// runComplaintDigest tallies stored complaints by severity and sentiment and
// logs the counts. Read-only; the write path is untouched.
func runComplaintDigest(store db.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	complaints, err := store.GetDocuments(ctx, "complaint")
	if err != nil {
		log.Printf("Complaint digest failed: %v", err)
		return
	}

	bySeverity := map[string]int{}
	bySentiment := map[string]int{}
	for _, complaint := range complaints {
		if severity, ok := complaint["severity"].(string); ok {
			bySeverity[severity]++
		}
		if sentiment, ok := complaint["sentiment"].(string); ok {
			bySentiment[sentiment]++
		}
	}

	log.Printf("Complaint digest: %d total, severity high=%d medium=%d low=%d, sentiment negative=%d neutral=%d positive=%d",
		len(complaints),
		bySeverity["high"], bySeverity["medium"], bySeverity["low"],
		bySentiment["negative"], bySentiment["neutral"], bySentiment["positive"])
}
