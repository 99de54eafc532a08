package vm

import "sync"

var statePool = sync.Pool{
	New: func() any {
		return NewFixedState(DefaultStackDepth)
	},
}

// GetState returns a clean state with DefaultStackDepth slots.
func GetState() *State {
	return statePool.Get().(*State)
}

// PutState resets st and returns it to the pool. Only states obtained
// from GetState belong here.
func PutState(st *State) {
	st.Reset()
	statePool.Put(st)
}
