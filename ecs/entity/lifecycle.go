package entity

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"github.com/sirupsen/logrus"
)

var errNoLifecycleFSM = errors.New("script does not declare an fsm")

var lifecycleOps = map[string]bool{
	"animation":       true,
	"disable_body":    true,
	"disable_overlap": true,
	"sound":           true,
	"destroy":         true,
}

var (
	lifecycleMu    sync.Mutex
	lifecycleCache = map[string]*component.Lifecycle{}
)

// LoadLifecycle runs a lifecycle script once and caches the decoded table.
// Enemies built from the same script share the table, which is never
// mutated after decoding.
func LoadLifecycle(scriptName string) (*component.Lifecycle, error) {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if lc, ok := lifecycleCache[scriptName]; ok {
		return lc, nil
	}

	scriptBytes, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return nil, fmt.Errorf("lifecycle %q: %w", scriptName, err)
	}
	lc, err := DecodeLifecycleScript(scriptBytes)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"file": scriptName}).WithError(err).Error("lifecycle script rejected")
		return nil, fmt.Errorf("lifecycle %q: %w", scriptName, err)
	}
	lifecycleCache[scriptName] = lc
	return lc, nil
}

// ResetLifecycleCache forgets decoded scripts so the next build reads them
// again.
func ResetLifecycleCache() {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()
	lifecycleCache = map[string]*component.Lifecycle{}
}

func DecodeLifecycleScript(src []byte) (*component.Lifecycle, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	fsm := compiled.Get("fsm")
	if fsm == nil || fsm.IsUndefined() {
		return nil, errNoLifecycleFSM
	}
	raw, ok := toStringAnyMap(fsm.Value())
	if !ok {
		return nil, fmt.Errorf("script global 'fsm' must be a map")
	}
	return decodeLifecycle(raw)
}

func decodeLifecycle(raw map[string]any) (*component.Lifecycle, error) {
	initial, _ := raw["initial"].(string)
	if strings.TrimSpace(initial) == "" {
		return nil, fmt.Errorf("missing 'initial' state")
	}

	statesRaw, ok := toStringAnyMap(raw["states"])
	if !ok {
		return nil, fmt.Errorf("'states' must be a map")
	}
	if _, ok := statesRaw[initial]; !ok {
		return nil, fmt.Errorf("initial state %q is not declared", initial)
	}

	lc := &component.Lifecycle{
		Initial:     initial,
		OnEnter:     make(map[string][]component.LifecycleAction, len(statesRaw)),
		Transitions: make(map[string]map[string]string),
	}

	for name, stateAny := range statesRaw {
		stateMap, ok := toStringAnyMap(stateAny)
		if !ok {
			return nil, fmt.Errorf("state %q must be a map", name)
		}
		actions, err := toActionList(stateMap["on_enter"])
		if err != nil {
			return nil, fmt.Errorf("state %q on_enter: %w", name, err)
		}
		lc.OnEnter[name] = actions
	}

	transitionsRaw, ok := toStringAnyMap(raw["transitions"])
	if !ok {
		return nil, fmt.Errorf("'transitions' must be a map")
	}
	for from, listAny := range transitionsRaw {
		if _, ok := statesRaw[from]; !ok {
			return nil, fmt.Errorf("transitions.%s: unknown state", from)
		}
		items, ok := toAnySlice(listAny)
		if !ok {
			return nil, fmt.Errorf("transitions.%s: must be an array", from)
		}
		events := make(map[string]string, len(items))
		for _, item := range items {
			m, ok := toStringAnyMap(item)
			if !ok {
				return nil, fmt.Errorf("transitions.%s: entry %v must be a map", from, item)
			}
			event, _ := m["event"].(string)
			to, _ := m["to"].(string)
			if event == "" || to == "" {
				return nil, fmt.Errorf("transitions.%s: entry needs 'event' and 'to'", from)
			}
			if _, ok := statesRaw[to]; !ok {
				return nil, fmt.Errorf("transitions.%s: unknown target %q", from, to)
			}
			events[event] = to
		}
		lc.Transitions[from] = events
	}

	return lc, nil
}

// toActionList decodes entries such as { animation: "die" } or
// { destroy: true }. Each entry holds exactly one operation.
func toActionList(v any) ([]component.LifecycleAction, error) {
	if v == nil {
		return nil, nil
	}

	items, ok := toAnySlice(v)
	if !ok {
		return nil, fmt.Errorf("must be an array")
	}

	out := make([]component.LifecycleAction, 0, len(items))
	for _, item := range items {
		m, ok := toStringAnyMap(item)
		if !ok || len(m) != 1 {
			return nil, fmt.Errorf("entry %v must be a single-key map", item)
		}
		var op string
		for k := range m {
			op = k
		}
		if !lifecycleOps[op] {
			return nil, fmt.Errorf("unknown operation %q", op)
		}

		act := component.LifecycleAction{Op: op}
		switch val := m[op].(type) {
		case string:
			act.Name = val
			act.Value = true
		case bool:
			act.Value = val
		default:
			return nil, fmt.Errorf("operation %q: unsupported value %v", op, val)
		}
		out = append(out, act)
	}

	return out, nil
}

func toStringAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func toAnySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	default:
		return nil, false
	}
}
