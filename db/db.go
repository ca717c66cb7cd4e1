package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the persistence interface the handlers and cron jobs consume:
// insert a document into a named collection, list a collection, fetch a
// single document, and enumerate collection names for the status endpoint.
type Store interface {
	CreateDocument(ctx context.Context, collection string, data interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string) ([]map[string]interface{}, error)
	GetDocument(ctx context.Context, collection, id string) (map[string]interface{}, error)
	Collections(ctx context.Context) ([]string, error)
}

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client. Credentials come
// base64-encoded from the FIREBASE_CREDENTIALS env variable.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// FirestoreStore implements Store on top of a Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// CreateDocument inserts data into the named collection under a fresh UUID
// document ID and returns that ID.
func (s *FirestoreStore) CreateDocument(ctx context.Context, collection string, data interface{}) (string, error) {
	id := uuid.NewString()
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to create document in %s: %w", collection, err)
	}
	return id, nil
}

// GetDocuments returns every document in the named collection as a map with
// the document ID mirrored into an "id" field.
func (s *FirestoreStore) GetDocuments(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	items := []map[string]interface{}{}

	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating %s documents: %w", collection, err)
		}

		data := doc.Data()
		data["id"] = doc.Ref.ID
		items = append(items, data)
	}

	return items, nil
}

// GetDocument fetches a single document by ID.
func (s *FirestoreStore) GetDocument(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting document %s/%s: %w", collection, id, err)
	}

	data := doc.Data()
	data["id"] = doc.Ref.ID
	return data, nil
}

// Collections lists the top-level collection names.
func (s *FirestoreStore) Collections(ctx context.Context) ([]string, error) {
	var names []string

	iter := s.client.Collections(ctx)
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing collections: %w", err)
		}
		names = append(names, ref.ID)
	}

	return names, nil
}
