// Package http implements the REST transport of the game-keeper backend.
//
// Routes cover registration and login, the per-domain sync endpoints
// (/api/sync/{domain}/push, delete and changes) and the friend and group
// transactions. The middleware chain assigns a trace id, writes the access
// log, unpacks gzip bodies, authenticates the bearer token and, on write
// routes, verifies the HashSHA256 body signature before a handler runs.
package http
