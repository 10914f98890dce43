package database

import (
	"ArGuide/config/environment"
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client

// InitFirebase initializes the Firestore client used by the history store.
// A missing credential is reported as an error rather than killing the
// process; the caller decides whether to run without history.
func InitFirebase() error {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID environment variable is missing")
	}

	ctx := context.Background()
	config := &firebase.Config{
		ProjectID: projectID,
	}
	app, err := firebase.NewApp(ctx, config, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase: %w", err)
	}
	FirebaseApp = app

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("failed to create Firestore client: %w", err)
	}
	log.Println("Firestore initialized successfully")

	return nil
}

// GetFirestoreClient returns the Firestore client instance, nil when Firebase
// was not initialized.
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}
