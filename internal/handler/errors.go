// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address. This is a fatal misconfiguration
// and makes the application fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
