// Package op holds the 1Password-specific pieces of the action: credential
// validation, reference parsing, `op item get` output parsing, and the
// secret reference readers.
package op

import (
	"errors"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/pipeline"
)

const (
	EnvConnectHost         = "OP_CONNECT_HOST"
	EnvConnectToken        = "OP_CONNECT_TOKEN"
	EnvServiceAccountToken = "OP_SERVICE_ACCOUNT_TOKEN"
)

// ErrAuthentication is returned when no usable credential set is present.
var ErrAuthentication = errors.New("(OP_CONNECT_HOST and OP_CONNECT_TOKEN) or OP_SERVICE_ACCOUNT_TOKEN must be set")

// Method is the credential shape used to authenticate.
type Method int

const (
	MethodConnect Method = iota
	MethodServiceAccount
)

func (m Method) String() string {
	switch m {
	case MethodConnect:
		return "Connect"
	case MethodServiceAccount:
		return "Service account"
	default:
		return "unknown"
	}
}

// ValidateAuth checks the environment for a complete credential set and
// reports which one will be used. Connect credentials (host and token, both
// required) take priority over a service account token; when both are present
// a warning is emitted.
func ValidateAuth(environment *env.Environment, sink pipeline.Sink) (Method, error) {
	host, _ := environment.Get(EnvConnectHost)
	token, _ := environment.Get(EnvConnectToken)
	serviceAccountToken, _ := environment.Get(EnvServiceAccountToken)

	method := MethodConnect
	if host == "" || token == "" {
		if serviceAccountToken == "" {
			return method, ErrAuthentication
		}
		method = MethodServiceAccount
	} else if serviceAccountToken != "" {
		sink.Warning("Both Connect and Service account credentials are provided. Connect credentials will take priority.")
	}

	sink.Info("Authenticated with %s.", method)
	return method, nil
}
