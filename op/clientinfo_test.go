package op_test

import (
	"testing"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/op"
	"github.com/dave-wwg/load-secrets-action/version"
)

func TestSetClientInfo(t *testing.T) {
	environment := env.New()

	op.SetClientInfo(environment)

	if v, _ := environment.Get("OP_INTEGRATION_NAME"); v != "1Password GitHub Action" {
		t.Errorf("OP_INTEGRATION_NAME = %q", v)
	}
	if v, _ := environment.Get("OP_INTEGRATION_ID"); v != "GHA" {
		t.Errorf("OP_INTEGRATION_ID = %q", v)
	}
	if v, _ := environment.Get("OP_INTEGRATION_BUILDNUMBER"); v != version.BuildNumber() {
		t.Errorf("OP_INTEGRATION_BUILDNUMBER = %q, want %q", v, version.BuildNumber())
	}
}
