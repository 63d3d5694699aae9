package core

// Templates for the pip-driven installation variant. They are rendered with
// the resolved toolchain descriptor path and written next to the LibUIPC
// source tree, where scikit-build-core picks them up.

const pyprojectTemplate = `[build-system]
requires = [
    "scikit-build-core[pyproject]>=0.8.0",
    "pybind11>=2.10.0",
    "cmake>=3.26.0",
    "ninja",
]
build-backend = "scikit_build_core.build"

[project]
name = "libuipc"
version = "0.9.0"
description = "Unified Incremental Potential Contact (IPC) library"
readme = "README.md"
license = {text = "MIT"}
keywords = ["ipc", "computer graphics", "physics simulation"]
requires-python = ">=3.10"
dependencies = [
    "numpy>=1.20.0",
]

[project.optional-dependencies]
gui = ["polyscope"]
dev = ["pytest", "pytest-cov"]
test = ["pytest"]

[tool.scikit-build]
cmake.args = [
    "-DUIPC_BUILD_PYBIND=ON",
    "-DUIPC_BUILD_EXAMPLES=OFF",
    "-DUIPC_BUILD_TESTS=OFF",
    "-DUIPC_BUILD_BENCHMARKS=OFF",
    "-DUIPC_BUILD_GUI=OFF",
]
cmake.build-type = "Release"
cmake.verbose = true
install.components = ["python"]
wheel.install-dir = "libuipc"

[tool.scikit-build.cmake.define]
CMAKE_TOOLCHAIN_FILE = {env="CMAKE_TOOLCHAIN_FILE", default="{{.ToolchainFile}}"}

[tool.cibuildwheel]
build = ["cp310-*", "cp311-*", "cp312-*"]
skip = ["*-win32", "*-manylinux_i686", "*-musllinux_*"]

[tool.cibuildwheel.environment]
CMAKE_TOOLCHAIN_FILE = "{{.ToolchainFile}}"
`

const cmakeWrapperTemplate = `cmake_minimum_required(VERSION 3.26)

project(libuipc_pip)

set(UIPC_BUILD_PYBIND ON CACHE BOOL "Build Python bindings" FORCE)
set(UIPC_BUILD_EXAMPLES OFF CACHE BOOL "Skip examples" FORCE)
set(UIPC_BUILD_TESTS OFF CACHE BOOL "Skip tests" FORCE)
set(UIPC_BUILD_BENCHMARKS OFF CACHE BOOL "Skip benchmarks" FORCE)
set(UIPC_BUILD_GUI OFF CACHE BOOL "Skip GUI" FORCE)

if(NOT CMAKE_TOOLCHAIN_FILE)
    if(EXISTS "{{.ToolchainFile}}")
        set(CMAKE_TOOLCHAIN_FILE "{{.ToolchainFile}}")
    endif()
endif()

include("${CMAKE_CURRENT_SOURCE_DIR}/CMakeLists.txt")

if(TARGET pyuipc)
    install(TARGETS pyuipc
            COMPONENT python
            DESTINATION libuipc)

    install(DIRECTORY "${CMAKE_CURRENT_SOURCE_DIR}/python/src/"
            COMPONENT python
            DESTINATION libuipc
            FILES_MATCHING PATTERN "*.py")

    install(DIRECTORY "${CMAKE_CURRENT_SOURCE_DIR}/python/typings/"
            COMPONENT python
            DESTINATION libuipc
            FILES_MATCHING PATTERN "*.pyi"
            OPTIONAL)
endif()
`

const pipInstructionsTemplate = `# LibUIPC pip installation

## Option 1: Install directly from source

    pip install scikit-build-core[pyproject] pybind11 cmake ninja
    pip install . -v

## Option 2: Use the pip-optimized configuration

    cp pyproject_pip.toml pyproject.toml
    cp CMakeLists_pip.txt CMakeLists.txt
    pip install . -v

## Requirements

- CMake >= 3.26
- CUDA >= 12.4 (for GPU support)
- Python >= 3.10
- vcpkg checkout at {{.ToolchainDir}} (set up by uipcup)

The first installation may take 30+ minutes while vcpkg compiles
dependencies; later installs reuse the vcpkg cache.
`
