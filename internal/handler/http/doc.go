// Package http implements the HTTP transport layer of the application.
//
// It wires the chi routes of the consent banner API and the site owner API,
// and the middleware in front of them: request tracing, access logging,
// security headers, CORS, visitor-token and site access-token
// authentication. Handlers decode requests, call the service layer and map
// service errors to status codes through a single table.
package http
