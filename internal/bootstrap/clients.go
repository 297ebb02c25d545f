package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
	kms "cloud.google.com/go/kms/apiv1"
)

// Both clients use application default credentials. FIRESTORE_EMULATOR_HOST
// is honoured by the Firestore client.

func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}

func InitKMS(ctx context.Context) (*kms.KeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}
