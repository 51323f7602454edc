package component

// TTL destroys its entity after Frames updates. Pickups use it so their
// sound flag is serviced before the entity disappears.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
