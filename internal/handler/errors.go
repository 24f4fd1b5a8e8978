// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address. The application cannot start without a
// transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
