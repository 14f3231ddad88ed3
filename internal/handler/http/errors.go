// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request rejections raised by the middleware chain before a handler runs.
// They are logged only; the client receives one of the app.Msg* bodies.
var (
	// ErrEmptyAuthorizationHeader means the request carried no bearer token.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header has no "<scheme> <token>" shape.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is present but the token is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingSignature is logged when a signed route receives no HashSHA256 header.
	ErrMissingSignature = errors.New("missing `HashSHA256` header")

	// ErrSignatureMismatch is logged when the HMAC of the plain body differs
	// from the HashSHA256 header.
	ErrSignatureMismatch = errors.New("request body signature mismatch")
)
