// Package firestore implements the document store boundary on top of Cloud
// Firestore, reached through the Firebase Admin SDK.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aipage-top/aipage-backend/internal/docstore"
)

// Collection holding one document per shareable HTML page.
const Collection = "html_projects"

type Store struct {
	client     *firestore.Client
	collection string
}

// Connect initializes the Firebase app from a service-account credentials
// file and opens its Firestore client.
func Connect(ctx context.Context, projectID, credentialsPath string) (*Store, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore client: %w", err)
	}

	return New(client, Collection), nil
}

func New(client *firestore.Client, collection string) *Store {
	return &Store{client: client, collection: collection}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, id string) (docstore.Doc, error) {
	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return docstore.Doc{ID: id}, nil
	}
	if err != nil {
		return docstore.Doc{}, err
	}
	return docstore.Doc{ID: snap.Ref.ID, Exists: true, Fields: snap.Data()}, nil
}

func (s *Store) Add(ctx context.Context, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(s.collection).Add(ctx, fields)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *Store) Update(ctx context.Context, id string, fields map[string]any) error {
	_, err := s.client.Collection(s.collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.Collection(s.collection).Doc(id).Delete(ctx)
	return err
}

func (s *Store) List(ctx context.Context, publicOnly bool) ([]docstore.Doc, error) {
	q := s.client.Collection(s.collection).Query
	if publicOnly {
		q = q.Where("is_public", "==", true)
	}
	q = q.OrderBy("updated_at", firestore.Desc)

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]docstore.Doc, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, docstore.Doc{ID: snap.Ref.ID, Exists: true, Fields: snap.Data()})
	}
	return out, nil
}
