package services

// Confirmer is the synchronous yes/no confirmation collaborator guarding
// destructive operations. The interactive implementation lives in the
// CLI layer; tests inject stubs that always accept or always decline.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}
