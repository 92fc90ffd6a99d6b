package services

// Confirmer answers whether the operator acknowledged a destructive
// action. Over HTTP it is built from the request; tests stub it.
type Confirmer func(action string) bool

// AlwaysConfirm acknowledges every action.
func AlwaysConfirm(string) bool { return true }
