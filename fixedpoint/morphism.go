package fixedpoint

import (
	"github.com/ktynski/firm/presheaf"
)

// Payload is the tagged union carried by a Grace-equivariant morphism:
// either a concrete transform on fiber elements or an opaque token
// naming a physical coupling. Equivariance checking branches
// exhaustively on the concrete payload type.
type Payload interface {
	payloadKind() string
}

// TransformPayload carries a concrete transform that must commute with
// the Grace operator.
type TransformPayload struct {
	Transform presheaf.Transform
}

func (TransformPayload) payloadKind() string { return "transform" }

// TokenPayload carries an opaque coupling token that must be
// compatible with the target's physical system.
type TokenPayload struct {
	Token string
}

func (TokenPayload) payloadKind() string { return "token" }

// Morphism is a Grace-equivariant morphism between two fixed points,
// identified by their names.
type Morphism struct {
	Name             string
	Source           string
	Target           string
	Payload          Payload
	ConservationLaws []string

	identity bool
}

// SourceID returns the source fixed point name.
func (m Morphism) SourceID() string { return m.Source }

// TargetID returns the target fixed point name.
func (m Morphism) TargetID() string { return m.Target }

// IsIdentity reports whether the morphism is an identity.
func (m Morphism) IsIdentity() bool { return m.identity }

// Equal compares morphisms structurally. Transform payloads are
// compared by their symbolic traces, never by function pointer.
func (m Morphism) Equal(o Morphism) bool {
	if m.Name != o.Name || m.Source != o.Source || m.Target != o.Target || m.identity != o.identity {
		return false
	}
	if len(m.ConservationLaws) != len(o.ConservationLaws) {
		return false
	}
	for i := range m.ConservationLaws {
		if m.ConservationLaws[i] != o.ConservationLaws[i] {
			return false
		}
	}
	return payloadEqual(m.Payload, o.Payload)
}

func payloadEqual(a, b Payload) bool {
	switch at := a.(type) {
	case nil:
		return b == nil
	case TokenPayload:
		bt, ok := b.(TokenPayload)
		return ok && at.Token == bt.Token
	case TransformPayload:
		bt, ok := b.(TransformPayload)
		return ok && !at.Transform.DistinguishableFrom(bt.Transform)
	default:
		return false
	}
}

// composePayloads combines two payloads under composition. Transform
// payloads compose functionally with flattened traces; token payloads
// concatenate. Mixed or missing payloads collapse to none, which keeps
// payload composition associative.
func composePayloads(outer, inner Payload) Payload {
	switch o := outer.(type) {
	case TransformPayload:
		if i, ok := inner.(TransformPayload); ok {
			return TransformPayload{Transform: o.Transform.Compose(i.Transform)}
		}
	case TokenPayload:
		if i, ok := inner.(TokenPayload); ok {
			return TokenPayload{Token: i.Token + "+" + o.Token}
		}
	}
	return nil
}

// unionLaws merges conservation law lists, keeping first occurrences.
// Stable deduplication of the concatenation keeps the merge
// associative.
func unionLaws(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, law := range append(append([]string{}, a...), b...) {
		if _, ok := seen[law]; ok {
			continue
		}
		seen[law] = struct{}{}
		out = append(out, law)
	}
	return out
}
