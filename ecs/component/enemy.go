package component

// Enemy is a patrolling spider. State is the current lifecycle state name
// from the enemy's lifecycle table.
type Enemy struct {
	Speed float64
	State string
}

var EnemyComponent = NewComponent[Enemy]()

// Lifecycle is a declarative state machine table. OnEnter lists the
// actions run when a state is entered; Transitions maps state -> event ->
// next state.
type Lifecycle struct {
	Initial     string
	OnEnter     map[string][]LifecycleAction
	Transitions map[string]map[string]string
}

// LifecycleAction is one on-enter step. Only the fields relevant to Op are
// set.
type LifecycleAction struct {
	Op    string
	Name  string
	Value bool
}

var LifecycleComponent = NewComponent[Lifecycle]()
