package console

import "context"

// Screen una pantalla de la aplicación. Show dibuja, atiende una interacción y
// devuelve qué hacer a continuación.
type Screen interface {
	Show(ctx context.Context, app *App) Transition
}

type transitionKind int

const (
	stayKind transitionKind = iota
	pushKind
	popKind
	replaceKind
	quitKind
)

// Transition resultado de una pantalla.
type Transition struct {
	kind transitionKind
	next Screen
}

func stay() Transition                { return Transition{kind: stayKind} }
func push(s Screen) Transition        { return Transition{kind: pushKind, next: s} }
func pop() Transition                 { return Transition{kind: popKind} }
func replaceWith(s Screen) Transition { return Transition{kind: replaceKind, next: s} }
func quit() Transition                { return Transition{kind: quitKind} }

// Navigator pila de pantallas. Volver a una pantalla la vuelve a mostrar, así los
// listados se recargan siempre al regresar de un formulario.
type Navigator struct {
	stack []Screen
}

// NewNavigator crea la pila con la pantalla raíz.
func NewNavigator(root Screen) *Navigator {
	return &Navigator{stack: []Screen{root}}
}

// Current pantalla en la cima; nil si la pila está vacía.
func (n *Navigator) Current() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth cantidad de pantallas apiladas.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Apply aplica la transición a la pila.
func (n *Navigator) Apply(t Transition) {
	switch t.kind {
	case pushKind:
		n.stack = append(n.stack, t.next)
	case popKind:
		if len(n.stack) > 0 {
			n.stack = n.stack[:len(n.stack)-1]
		}
	case replaceKind:
		if len(n.stack) > 0 {
			n.stack[len(n.stack)-1] = t.next
		} else {
			n.stack = append(n.stack, t.next)
		}
	case quitKind:
		n.stack = nil
	}
}

// Run muestra pantallas hasta vaciar la pila o cancelar ctx.
func (n *Navigator) Run(ctx context.Context, app *App) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := n.Current()
		if s == nil {
			return nil
		}
		n.Apply(s.Show(ctx, app))
	}
}
