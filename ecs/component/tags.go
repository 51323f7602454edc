package component

type HeroTag struct{}

var HeroTagComponent = NewComponent[HeroTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CoinTag struct{}

var CoinTagComponent = NewComponent[CoinTag]()

type KeyTag struct{}

var KeyTagComponent = NewComponent[KeyTag]()

type DoorTag struct{}

var DoorTagComponent = NewComponent[DoorTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

// BoundaryWallTag marks the invisible walls flanking each platform. Only
// enemies collide with them.
type BoundaryWallTag struct{}

var BoundaryWallTagComponent = NewComponent[BoundaryWallTag]()

type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
