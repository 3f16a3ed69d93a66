package identity

import "slices"

// EntitlementQuery asks about either a plan or a feature. Exactly one field is expected to be set.
type EntitlementQuery struct {
	Plan    string
	Feature string
}

func Plan(name string) EntitlementQuery {
	return EntitlementQuery{Plan: name}
}

func Feature(name string) EntitlementQuery {
	return EntitlementQuery{Feature: name}
}

// Identity is the caller as reported by the identity provider.
// The zero value is an anonymous caller.
type Identity struct {
	UserId   string
	Plans    []string
	Features []string
}

func Anonymous() Identity {
	return Identity{}
}

func (i Identity) Authenticated() bool {
	return i.UserId != ""
}

// Has reports whether the caller holds the plan or feature named by q.
func (i Identity) Has(q EntitlementQuery) bool {
	switch {
	case q.Plan != "":
		return slices.Contains(i.Plans, q.Plan)
	case q.Feature != "":
		return slices.Contains(i.Features, q.Feature)
	default:
		return false
	}
}
