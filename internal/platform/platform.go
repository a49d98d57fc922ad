// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform detects the host platform and resolves the catalog
// command line to run on it.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Platform identifies the host environment commands are resolved against.
type Platform int

// Supported platforms. WSL is detected separately from plain Linux because
// catalogs often install Windows-side tooling from inside WSL.
const (
	Unknown Platform = iota
	Linux
	WSL
	Mac
	Windows
)

// Detect identifies the platform the process is running on.
func Detect() Platform {
	return detect(runtime.GOOS, os.Getenv("WSL_DISTRO_NAME"), os.Getenv("WSL_INTEROP"), readProcVersion())
}

func detect(goos, wslDistro, wslInterop, procVersion string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return Mac
	case "linux":
		if wslDistro != "" || wslInterop != "" || strings.Contains(strings.ToLower(procVersion), "microsoft") {
			return WSL
		}

		return Linux
	}

	return Unknown
}

// Label returns the human-readable platform name for the status bar.
func (p Platform) Label() string {
	switch p {
	case Linux:
		return "Linux"
	case WSL:
		return "WSL"
	case Mac:
		return "macOS"
	case Windows:
		return "Windows"
	case Unknown:
		return "Unknown"
	}

	return "Unknown"
}

// Shell returns the shell binary and flag used to run catalog command lines.
func (p Platform) Shell() (string, string) {
	if p == Windows {
		return "cmd", "/C"
	}

	return "sh", "-lc"
}

// readProcVersion returns /proc/version contents, or empty when unreadable.
func readProcVersion() string {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return ""
	}

	return string(data)
}
