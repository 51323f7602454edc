package component

// ScreenSpace marks HUD entities. They are placed in screen pixels and never
// flipped.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
