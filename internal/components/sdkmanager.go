package components

import (
	"context"
	"fmt"

	"github.com/rigup-dev/rigup/internal/log"
)

// SDKManager installs Android SDK components through the sdkmanager
// command line tool.
type SDKManager struct {
	// Path is the sdkmanager binary, normally
	// <sdk>/cmdline-tools/latest/bin/sdkmanager.
	Path string

	runner Runner
	logger log.Logger
}

func NewSDKManager(path string, runner Runner, logger log.Logger) *SDKManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SDKManager{Path: path, runner: runner, logger: logger}
}

// Install installs one sdkmanager package, e.g. "ndk;26.3.11579264".
// Licenses must have been accepted beforehand or sdkmanager stops to
// prompt.
func (s *SDKManager) Install(ctx context.Context, id string) error {
	if s.Path == "" {
		return fmt.Errorf("sdkmanager path not configured")
	}
	s.logger.Info("installing SDK component", "component", id)
	return s.runner.Run(ctx, s.Path, id)
}
