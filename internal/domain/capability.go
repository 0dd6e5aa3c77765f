package domain

// Capabilities is the per-request capability set delivered by the external
// identity service. The zero value is an anonymous caller.
type Capabilities struct {
	UserID        int
	Authenticated bool
	Staff         bool
}

// CanWriteCatalog reports whether the caller may create, update or delete
// catalog resources (halls, plays, genres, actors, performances). Reads are
// open to anyone.
func CanWriteCatalog(caps Capabilities) bool {
	return caps.Authenticated && caps.Staff
}

// CanUseReservations reports whether the caller may touch the reservations
// resource at all.
func CanUseReservations(caps Capabilities) bool {
	return caps.Authenticated
}

// OwnsReservation reports whether the caller is the owning user of the
// reservation. Staff get no override here.
func OwnsReservation(caps Capabilities, reservation Reservation) bool {
	return caps.Authenticated && caps.UserID == reservation.UserID
}
