package component

// CoinCounter is the HUD text showing collected coins.
type CoinCounter struct {
	RenderedText string
}

var CoinCounterComponent = NewComponent[CoinCounter]()

// KeyIcon shows frame 1 of its sheet while the key is held.
type KeyIcon struct {
	Held bool
}

var KeyIconComponent = NewComponent[KeyIcon]()

// HeartsIcon mirrors the session damage counter as a sheet frame.
type HeartsIcon struct {
	Frame int
}

var HeartsIconComponent = NewComponent[HeartsIcon]()
