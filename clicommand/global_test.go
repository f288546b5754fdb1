package clicommand

import (
	"testing"

	"github.com/dave-wwg/load-secrets-action/logger"
)

func TestCreateLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       GlobalConfig
		wantLevel logger.Level
	}{
		{
			name:      "defaults",
			cfg:       GlobalConfig{},
			wantLevel: logger.INFO,
		},
		{
			name:      "debug",
			cfg:       GlobalConfig{Debug: true},
			wantLevel: logger.DEBUG,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			l := CreateLogger(&test.cfg)
			if got, want := l.GetLevel(), test.wantLevel; got != want {
				t.Errorf("CreateLogger(%+v).GetLevel() = %v, want %v", test.cfg, got, want)
			}
		})
	}
}

func TestCreateLoggerNoColor(t *testing.T) {
	t.Parallel()

	l, ok := CreateLogger(&GlobalConfig{NoColor: true}).(*logger.TextLogger)
	if !ok {
		t.Fatal("CreateLogger did not return a *logger.TextLogger")
	}
	if l.Colors {
		t.Error("Colors = true, want false")
	}
}
