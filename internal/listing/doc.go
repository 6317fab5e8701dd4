// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listing translates untrusted query-string parameters into a
// bounded, filtered and ordered fetch description.
//
// A [Spec] declares which parameters an endpoint recognises and how each one
// becomes a predicate; [Spec.Build] turns a request's url.Values into a
// [Query] that the store layer executes. Page parameters are normalised by
// [ParsePage] and never rejected.
package listing
