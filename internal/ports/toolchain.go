package ports

// Toolchain provisions the vcpkg checkout that supplies the native
// dependencies of the build, and exposes the toolchain descriptor file the
// build system consumes.
type Toolchain interface {
	// Ensure clones or updates vcpkg under toolchainDir and bootstraps it.
	Ensure(toolchainDir string) error
	// DescriptorPath is the CMake toolchain file inside the checkout.
	DescriptorPath(toolchainDir string) string
}
