// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies the transport errors a REST call can end
// with. The REST client never retries, so the classification exists for
// callers: to decide whether to retry at a higher level, to bucket
// errors in logs and metrics, or to tell a timeout from a cancellation.
//
// Package transient depends only on the standard library.
package transient
