package firestore

import (
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/firestore"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// SetupFirestore enables Firestore and creates the default database that
// holds device snapshot blobs.
func SetupFirestore(ctx *pulumi.Context, prov *gcp.Provider) error {
	svc, err := projects.NewService(ctx, "firestore", &projects.ServiceArgs{
		Service: pulumi.String("firestore.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return err
	}

	gcpCfg := config.New(ctx, "gcp")
	_, err = firestore.NewDatabase(ctx, "hsbooksDatabase", &firestore.DatabaseArgs{
		Project:    pulumi.String(gcpCfg.Require("project")),
		Name:       pulumi.String("(default)"),
		LocationId: pulumi.String(gcpCfg.Require("region")),
		Type:       pulumi.String("FIRESTORE_NATIVE"),
	},
		pulumi.Provider(prov),
		pulumi.DependsOn([]pulumi.Resource{svc}),
	)
	return err
}
