// Package firestore contains the concrete implementation of the persistence
// layer on the Firestore document store. All access is read-only list/get;
// the collections are owned and written by the client apps.
package firestore

import (
	"context"

	"upkeep/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection layout: users/{userID}/equipment/{equipmentID}/maintenance/{recordID}.
const (
	usersCollection       = "users"
	equipmentCollection   = "equipment"
	maintenanceCollection = "maintenance"
)

// ClientParams holds dependencies for the Firestore client.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx context.Context
	App *firebase.App
}

// NewClient opens the Firestore client of the Firebase app and closes it on
// shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
