package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/hsbooks/internal/errs"
)

type blobDoc struct {
	Data      []byte    `firestore:"data"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// firestoreStore syncs blobs to devices/{deviceID}/blobs/{key}.
type firestoreStore struct {
	client   *firestore.Client
	deviceID string
}

func NewFirestoreStore(client *firestore.Client, deviceID string) *firestoreStore {
	return &firestoreStore{client: client, deviceID: deviceID}
}

func (s *firestoreStore) doc(key string) *firestore.DocumentRef {
	return s.client.Collection("devices").Doc(s.deviceID).Collection("blobs").Doc(key)
}

func (s *firestoreStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	snap, err := s.doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, errs.NewDatabaseError("read", "failed to get "+key, err)
	}
	var d blobDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, false, errs.NewDatabaseError("read", "failed to parse "+key, err)
	}
	return d.Data, true, nil
}

func (s *firestoreStore) Set(ctx context.Context, key string, data []byte) error {
	_, err := s.doc(key).Set(ctx, blobDoc{Data: data, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return errs.NewDatabaseError("write", "failed to set "+key, err)
	}
	return nil
}
