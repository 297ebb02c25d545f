package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/hsbooks/infra/device"
	"github.com/GregMSThompson/hsbooks/infra/firestore"
	"github.com/GregMSThompson/hsbooks/infra/kms"
	"github.com/GregMSThompson/hsbooks/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// backup sync target
		if err := firestore.SetupFirestore(ctx, prov); err != nil {
			return err
		}

		key, err := kms.CreateSnapshotKey(ctx, prov, "hsbooks", "snapshot")
		if err != nil {
			return err
		}

		sa, err := device.CreateDeviceAccount(ctx, prov, key)
		if err != nil {
			return err
		}

		ctx.Export("kmsKeyName", key.ID())
		ctx.Export("deviceServiceAccount", sa.Email)
		return nil
	})
}
