package acomp

// symbolTable is the flat, single-scope name -> Variable map described
// in §3. Registration is idempotent on name (last writer wins); there
// is no scope-aware lookup and nothing is ever deregistered within a
// compilation unit.
type symbolTable struct {
	limit int
	vars  map[string]*Variable
}

func newSymbolTable(limit int) *symbolTable {
	return &symbolTable{
		limit: limit,
		vars:  map[string]*Variable{},
	}
}

// register overwrites (or creates) the entry for name. ok is false only
// when the table is at capacity and name is a brand new entry -- that
// is a recoverable capacity-overflow error (§3, §5), not rejected
// silently: callers are expected to turn a false return into a
// Diagnostic and otherwise proceed as if registration had happened.
func (s *symbolTable) register(name string, typ SemanticType, isConst bool) bool {
	if _, exists := s.vars[name]; !exists && len(s.vars) >= s.limit {
		return false
	}
	s.vars[name] = &Variable{Name: name, Type: typ, Const: isConst}
	return true
}

func (s *symbolTable) lookup(name string) (*Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// typeOf is a convenience used by the type-inference pass: it returns
// TypeUnknown for names that were never declared.
func (s *symbolTable) typeOf(name string) SemanticType {
	if v, ok := s.vars[name]; ok {
		return v.Type
	}
	return TypeUnknown
}
