package op

import (
	"context"
	"fmt"

	sdk "github.com/1password/onepassword-sdk-go"

	"github.com/dave-wwg/load-secrets-action/version"
)

// ServiceAccountReader resolves secret references with a service account
// token, using the 1Password SDK.
type ServiceAccountReader struct {
	client *sdk.Client
}

func NewServiceAccountReader(ctx context.Context, token string) (*ServiceAccountReader, error) {
	client, err := sdk.NewClient(ctx,
		sdk.WithServiceAccountToken(token),
		sdk.WithIntegrationInfo(IntegrationName, "v"+version.Version()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating 1Password client: %w", err)
	}

	return &ServiceAccountReader{client: client}, nil
}

func (r *ServiceAccountReader) Read(ctx context.Context, ref string) (string, error) {
	return r.client.Secrets.Resolve(ctx, ref)
}
