package ports

// PythonInstaller installs Python artifacts with pip.
type PythonInstaller interface {
	// InstallDirectory installs the package rooted at dir (`pip install .`).
	InstallDirectory(dir string) error
}
