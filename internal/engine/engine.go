package engine

// Engine converts raw rows into emission breakdowns using a fixed factor
// table supplied at construction. An Engine is stateless and safe for
// concurrent use; session history lives in Session, not here.
type Engine struct {
	factors Factors
}

// New creates an Engine with the given factor table. Pass DefaultFactors()
// for the reference table.
func New(factors Factors) *Engine {
	return &Engine{factors: factors}
}

// Factors returns the factor table the engine was constructed with.
func (e *Engine) Factors() Factors {
	return e.factors
}
