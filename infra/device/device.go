package device

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/kms"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// CreateDeviceAccount creates the identity a device syncs with. It can read
// and write Firestore and seal/open with the snapshot key, nothing else.
func CreateDeviceAccount(ctx *pulumi.Context, prov *gcp.Provider, key *kms.CryptoKey) (*serviceaccount.Account, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	sa, err := serviceaccount.NewAccount(ctx, "deviceServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("hsbooks-device"),
		DisplayName: pulumi.String("HS Books device sync"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	member := sa.Email.ApplyT(func(email string) string {
		return fmt.Sprintf("serviceAccount:%s", email)
	}).(pulumi.StringOutput)

	_, err = projects.NewIAMMember(ctx, "deviceFirestoreAccess", &projects.IAMMemberArgs{
		Role:    pulumi.String("roles/datastore.user"), // Firestore read/write
		Member:  member,
		Project: pulumi.String(projectID),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	_, err = kms.NewCryptoKeyIAMMember(ctx, "deviceKeyAccess", &kms.CryptoKeyIAMMemberArgs{
		CryptoKeyId: key.ID(),
		Role:        pulumi.String("roles/cloudkms.cryptoKeyEncrypterDecrypter"),
		Member:      member,
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	return sa, nil
}
