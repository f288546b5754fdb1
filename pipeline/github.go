package pipeline

import (
	"github.com/sethvargo/go-githubactions"

	"github.com/dave-wwg/load-secrets-action/env"
)

// GitHubSink publishes to a GitHub Actions workflow through the workflow
// command files (GITHUB_ENV, GITHUB_OUTPUT) and ::-style commands.
type GitHubSink struct {
	action      *githubactions.Action
	environment *env.Environment
}

// NewGitHubSink wraps a githubactions.Action. Exported variables are mirrored
// into environment, matching actions/core behaviour where exportVariable also
// updates process.env for the remainder of the run.
func NewGitHubSink(action *githubactions.Action, environment *env.Environment) *GitHubSink {
	return &GitHubSink{
		action:      action,
		environment: environment,
	}
}

func (s *GitHubSink) ExportVariable(name, value string) {
	s.environment.Set(name, value)
	s.action.SetEnv(name, value)
}

func (s *GitHubSink) SetOutput(name, value string) {
	s.action.SetOutput(name, value)
}

func (s *GitHubSink) AddMask(value string) {
	s.action.AddMask(value)
}

func (s *GitHubSink) Info(format string, v ...any) {
	s.action.Infof(format, v...)
}

func (s *GitHubSink) Warning(format string, v ...any) {
	s.action.Warningf(format, v...)
}
