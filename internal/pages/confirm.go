package pages

import "context"

// Confirmer asks the user to confirm a destructive action. Hosts that cannot
// show the page's own dialog, and tests, supply one.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AutoConfirm accepts every prompt.
var AutoConfirm = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})
