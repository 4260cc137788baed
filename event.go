// Copyright 2021 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality such as logging or request correlation.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only field that has been set is the plan.
	BeforeExecutionStart Event = iota
	// BeforeSend identifies the event that occurs after representations
	// have been negotiated and the HTTP request built, but before it is
	// handed to the HTTPDoer.
	//
	// When Client fires BeforeSend, the execution's request field is
	// set to the HTTP request that WILL BE sent after all BeforeSend
	// handlers have finished. Handlers may add or change headers on it.
	//
	// BeforeSend never fires if negotiation failed, since no request is
	// sent in that case.
	BeforeSend
	// AfterReceive identifies the event that occurs after an HTTP
	// response has been received and its body buffered, but before the
	// response is mapped to a result or an error.
	//
	// When Client fires AfterReceive, the execution's response and body
	// fields are set, and its state is Sent.
	//
	// Note that AfterReceive fires regardless of the HTTP response
	// status code, but never fires if the HTTPDoer returned an error.
	AfterReceive
	// AfterExecutionEnd identifies the event that occurs after the plan
	// execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution is in its
	// final state: its end time is set, and its error field is set if
	// the execution did not succeed.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeSend",
	"AfterReceive",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// REST call plan execution by Client, in the order in which they would
// occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeSend,
		AfterReceive,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
