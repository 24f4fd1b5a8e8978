// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into HTTP
// response bodies, kept in one place so the wording stays consistent
// across handlers.
package app

const (
	// MsgConsentSaved confirms a stored consent record.
	MsgConsentSaved = "Consent data saved successfully"

	// MsgNoScriptsFound accompanies an empty script category listing.
	MsgNoScriptsFound = "No script categories found for this site"

	// MsgScriptsSaved confirms stored script categories.
	MsgScriptsSaved = "Script categories saved successfully"

	// MsgSitesAuthorized is returned by the OAuth callback.
	MsgSitesAuthorized = "Sites authorized successfully"

	// MsgConsentEntriesTitle prefixes the site name in a consent listing.
	MsgConsentEntriesTitle = "Consent entries of "

	// MsgHealthy is the liveness status.
	MsgHealthy = "ok"
)
