package maybe

import "github.com/ib-77/mdo/pkg/monad"

// extractor is satisfied by Maybe[T] for every T; it lets the dynamic
// instance accept mixed payload types without reflection.
type extractor interface {
	extractJust() (any, bool)
}

type instance struct{}

var (
	_ monad.FailInstance = instance{}
	_ monad.Extractor    = instance{}
)

// Instance returns the dynamic adapter for the Maybe monad. Bind and
// Extract accept a Maybe of any payload type; Return and Fail produce
// Maybe[any].
func Instance() interface {
	monad.FailInstance
	monad.Extractor
} {
	return instance{}
}

func (instance) Bind(m any, f func(any) any) any {
	mv, ok := m.(extractor)
	if !ok {
		panic("maybe: Bind called with a non-Maybe value")
	}
	v, just := mv.extractJust()
	if !just {
		return Nothing[any]()
	}
	return f(v)
}

func (instance) Return(x any) any {
	return Just(x)
}

func (instance) Fail(_ any) any {
	return Nothing[any]()
}

func (instance) Extract(m any) (any, bool) {
	mv, ok := m.(extractor)
	if !ok {
		return nil, false
	}
	return mv.extractJust()
}
