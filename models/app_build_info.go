// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit baked into a vault binary with
// -ldflags. Any of them may be empty in a development build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Display returns a copy with every missing field set to [NotAvailable].
// Only use it for output: the version endpoint must see the empty value.
func (a AppBuildInfo) Display() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

// String formats the build info the way both binaries print it on start.
func (a AppBuildInfo) String() string {
	d := a.Display()
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", d.buildVersion, d.buildDate, d.buildCommit)
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
