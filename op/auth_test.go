package op_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/op"
	"github.com/dave-wwg/load-secrets-action/pipeline"
)

func TestValidateAuth(t *testing.T) {
	tests := []struct {
		name        string
		environ     map[string]string
		wantMethod  op.Method
		wantErr     bool
		wantWarning bool
	}{
		{
			name:    "no credentials",
			environ: map[string]string{},
			wantErr: true,
		},
		{
			name:    "connect host without token",
			environ: map[string]string{"OP_CONNECT_HOST": "http://localhost:8080"},
			wantErr: true,
		},
		{
			name:    "connect token without host",
			environ: map[string]string{"OP_CONNECT_TOKEN": "token"},
			wantErr: true,
		},
		{
			name: "connect credentials",
			environ: map[string]string{
				"OP_CONNECT_HOST":  "http://localhost:8080",
				"OP_CONNECT_TOKEN": "token",
			},
			wantMethod: op.MethodConnect,
		},
		{
			name:       "service account token",
			environ:    map[string]string{"OP_SERVICE_ACCOUNT_TOKEN": "ops_token"},
			wantMethod: op.MethodServiceAccount,
		},
		{
			name: "incomplete connect falls back to service account",
			environ: map[string]string{
				"OP_CONNECT_HOST":          "http://localhost:8080",
				"OP_SERVICE_ACCOUNT_TOKEN": "ops_token",
			},
			wantMethod: op.MethodServiceAccount,
		},
		{
			name: "both credential sets",
			environ: map[string]string{
				"OP_CONNECT_HOST":          "http://localhost:8080",
				"OP_CONNECT_TOKEN":         "token",
				"OP_SERVICE_ACCOUNT_TOKEN": "ops_token",
			},
			wantMethod:  op.MethodConnect,
			wantWarning: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sink := pipeline.NewBuffer()

			method, err := op.ValidateAuth(env.FromMap(test.environ), sink)

			if test.wantErr {
				if !errors.Is(err, op.ErrAuthentication) {
					t.Fatalf("ValidateAuth() error = %v, want ErrAuthentication", err)
				}
				if len(sink.Messages) != 0 {
					t.Errorf("sink.Messages = %q, want none on failure", sink.Messages)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateAuth() error = %v", err)
			}
			if method != test.wantMethod {
				t.Errorf("ValidateAuth() method = %v, want %v", method, test.wantMethod)
			}

			wantInfo := "[info] Authenticated with " + test.wantMethod.String() + "."
			if !slices.Contains(sink.Messages, wantInfo) {
				t.Errorf("sink.Messages = %q, missing %q", sink.Messages, wantInfo)
			}

			warned := false
			for _, m := range sink.Messages {
				if m == "[warning] Both Connect and Service account credentials are provided. Connect credentials will take priority." {
					warned = true
				}
			}
			if warned != test.wantWarning {
				t.Errorf("warning emitted = %t, want %t (messages: %q)", warned, test.wantWarning, sink.Messages)
			}
		})
	}
}
