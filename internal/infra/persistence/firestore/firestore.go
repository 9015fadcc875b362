// Package firestore implements the catalog persistence interfaces on Google
// Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"tourquote/config"
	"tourquote/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names in the catalog store.
const (
	collCountries  = "countries"
	collCities     = "cities"
	collCategories = "categories"
	collProducts   = "products"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// New creates the Firestore client through the Firebase Admin SDK.
func New(params Params) (*firestore.Client, error) {
	var opts []option.ClientOption
	if params.Config.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Context, &firebase.Config{
		ProjectID: params.Config.Firestore.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Context)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
