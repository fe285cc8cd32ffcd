package port

// IDGenerator produces collision-free opaque identifiers, used for invoice
// ids and session user ids.
type IDGenerator interface {
	NewID() string
}
