// Package payment models a single payment attempt against the hosted payment
// surface: the ephemeral session state machine and the cross-document signals
// the surface emits.
package payment

import (
	"encoding/json"
	"fmt"
)

// SignalKind classifies a message received from the payment surface. The
// surface communicates only via asynchronous cross-document messages carrying
// a JSON-encoded {event, url?} payload; anything it may send that we do not
// recognize maps to SignalUnrecognized and is safely ignored.
type SignalKind string

const (
	SignalSuccess      SignalKind = "success"
	SignalFailed       SignalKind = "failed"
	SignalRedirect     SignalKind = "redirect"
	SignalSurfaceReady SignalKind = "surface_ready"
	SignalUnrecognized SignalKind = "unrecognized"
)

// Signal is a classified payment surface message. Origin is the reported
// browsing-context origin of the message; it must be validated against the
// known provider origin before the signal is trusted to carry anything.
type Signal struct {
	Kind   SignalKind
	Origin string
	// ReceiptURL is the optional receipt/invoice URL on success.
	ReceiptURL string
	// Reason is the provider-reported failure reason, when given.
	Reason string
	// RedirectURL is the target the surface asked to navigate to. The
	// hosting page never follows it; it is opened in a new browsing context.
	RedirectURL string
}

type rawSignal struct {
	Event  string `json:"event"`
	URL    string `json:"url,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ParseSignal classifies a raw surface message payload. Classification is
// trust-agnostic: origin validation happens in the bridge before any state
// changes. Malformed payloads classify as unrecognized rather than erroring,
// since the surface's message stream is not under our control.
func ParseSignal(origin string, payload []byte) Signal {
	var raw rawSignal
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Signal{Kind: SignalUnrecognized, Origin: origin}
	}

	switch raw.Event {
	case "payment_success":
		return Signal{Kind: SignalSuccess, Origin: origin, ReceiptURL: raw.URL}
	case "payment_failed":
		return Signal{Kind: SignalFailed, Origin: origin, Reason: raw.Reason}
	case "redirect", "navigation":
		if raw.URL == "" {
			return Signal{Kind: SignalUnrecognized, Origin: origin}
		}
		return Signal{Kind: SignalRedirect, Origin: origin, RedirectURL: raw.URL}
	case "surface_ready", "loaded":
		return Signal{Kind: SignalSurfaceReady, Origin: origin}
	default:
		return Signal{Kind: SignalUnrecognized, Origin: origin}
	}
}

func (s Signal) String() string {
	return fmt.Sprintf("signal{%s from %s}", s.Kind, s.Origin)
}
