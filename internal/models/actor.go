package models

type ActorKind string

const (
	// ActorAdmin is unrestricted: it may act on any account
	ActorAdmin ActorKind = "admin"

	// ActorCustomer is restricted to accounts owned by one customer
	ActorCustomer ActorKind = "customer"
)

// Actor is the access principal for an operation: either unrestricted, or
// bound to exactly one customer id. A two-variant tagged value, not a
// hierarchy.
type Actor struct {
	Kind       ActorKind
	CustomerID string
}

// creates an unrestricted actor
func AdminActor() Actor {
	return Actor{Kind: ActorAdmin}
}

// creates an actor restricted to one customer's accounts
func CustomerActor(customerID string) Actor {
	return Actor{Kind: ActorCustomer, CustomerID: customerID}
}

// Unrestricted reports whether the actor may act on any account.
func (a Actor) Unrestricted() bool {
	return a.Kind == ActorAdmin
}

// Principal is a login identity. The credential is immutable once issued:
// changing it constructs a new Principal and swaps the registry slot, so
// outstanding references to the old value are never retroactively altered.
type Principal struct {
	Name       string
	Credential string
	Actor      Actor
}

// creates a new principal
func NewPrincipal(name, credential string, actor Actor) *Principal {
	return &Principal{Name: name, Credential: credential, Actor: actor}
}

// WithCredential returns a copy of the principal carrying the new
// credential; the receiver is unchanged.
func (p *Principal) WithCredential(credential string) *Principal {
	return &Principal{Name: p.Name, Credential: credential, Actor: p.Actor}
}
