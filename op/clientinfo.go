package op

import (
	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/version"
)

const (
	IntegrationName = "1Password GitHub Action"
	IntegrationID   = "GHA"

	EnvIntegrationName        = "OP_INTEGRATION_NAME"
	EnvIntegrationID          = "OP_INTEGRATION_ID"
	EnvIntegrationBuildNumber = "OP_INTEGRATION_BUILDNUMBER"
)

// SetClientInfo records the integration identification in the environment so
// that spawned `op` processes report it to the service.
func SetClientInfo(environment *env.Environment) {
	environment.Set(EnvIntegrationName, IntegrationName)
	environment.Set(EnvIntegrationID, IntegrationID)
	environment.Set(EnvIntegrationBuildNumber, version.BuildNumber())
}
