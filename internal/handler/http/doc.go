// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of course-cms.
//
// Every response is a [models.Response] envelope. Routes are split into a
// public group, a group behind the user access gate and the /admin group
// behind the administrator gate. Tracing, access logging, compression and
// the request deadline are applied to all of them. Errors from the service
// layer are translated to HTTP statuses by a single sentinel table.
package http
