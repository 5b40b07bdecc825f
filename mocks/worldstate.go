package mocks

// SimulatedWorldState mirrors the host's transaction simulation: GetState
// serves the last committed value and never a pending write, while puts and
// deletes collect in a write set that only Commit applies. Call Commit
// between invocations to mark a transaction boundary.
type SimulatedWorldState struct {
	committed map[string][]byte
	writes    map[string][]byte
	deletes   map[string]bool
}

func NewSimulatedWorldState() *SimulatedWorldState {
	return &SimulatedWorldState{
		committed: make(map[string][]byte),
		writes:    make(map[string][]byte),
		deletes:   make(map[string]bool),
	}
}

// Bind points a TransactionContext's state stubs at this world state.
func (s *SimulatedWorldState) Bind(ctx *TransactionContext) {
	ctx.GetStateStub = func(key string) ([]byte, error) {
		return s.committed[key], nil
	}
	ctx.PutStateWithoutKYCStub = func(key string, value []byte) error {
		s.writes[key] = value
		delete(s.deletes, key)
		return nil
	}
	ctx.DelStateWithoutKYCStub = func(key string) error {
		s.deletes[key] = true
		delete(s.writes, key)
		return nil
	}
}

// Commit applies the pending write set and starts a fresh transaction.
func (s *SimulatedWorldState) Commit() {
	for key, value := range s.writes {
		s.committed[key] = value
	}
	for key := range s.deletes {
		delete(s.committed, key)
	}
	s.writes = make(map[string][]byte)
	s.deletes = make(map[string]bool)
}

// Discard drops the pending write set, as the host does for a failed
// transaction.
func (s *SimulatedWorldState) Discard() {
	s.writes = make(map[string][]byte)
	s.deletes = make(map[string]bool)
}
