package ports

import "uipcup/internal/core/domain"

// BuildSystem drives the external CMake toolchain: configure a build tree
// from a source tree and build it.
type BuildSystem interface {
	VersionLine() (string, error)
	Configure(plan domain.BuildPlan) error
	Build(plan domain.BuildPlan) error
}
