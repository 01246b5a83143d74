package descriptor

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// ErrExtendsCycle is returned when a descriptor reaches itself through
// Extends.
var ErrExtendsCycle = errors.New("descriptor: extends chain contains a cycle")

// maxExtendsDepth bounds the Extends chain.
const maxExtendsDepth = 16

// Extend returns base with override applied on top. Neither input is
// modified and the result shares no memory with them.
//
// Structs, including those behind pointers such as the blog options, merge
// field by field. Non-zero scalars in override win. Slices and scalar
// pointers set in override replace the base value as a whole, so navigation
// and head tags are never merged element-wise and an explicit false wins.
// Extends is ignored on both sides.
func Extend(base, override Descriptor) (Descriptor, error) {
	base.Extends = nil
	override.Extends = nil
	out := base.Clone()
	src := override.Clone()

	if err := mergo.Merge(&out, src, mergo.WithOverride, mergo.WithTransformers(replaceWhole{})); err != nil {
		return Descriptor{}, fmt.Errorf("descriptor: merge: %w", err)
	}
	return out, nil
}

// replaceWhole makes slices and pointers to non-struct values set in the
// override replace the destination instead of merging into it. A nil
// destination is left to mergo, which assigns the source.
type replaceWhole struct{}

func (replaceWhole) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	switch {
	case t.Kind() == reflect.Slice:
	case t.Kind() == reflect.Ptr && t.Elem().Kind() != reflect.Struct:
	default:
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// Resolve flattens the Extends chain of d, oldest base first, and returns
// the merged descriptor with Extends cleared.
func Resolve(d Descriptor) (Descriptor, error) {
	chain := []*Descriptor{}
	seen := map[*Descriptor]struct{}{}
	for current := &d; current != nil; current = current.Extends {
		if _, ok := seen[current]; ok {
			return Descriptor{}, ErrExtendsCycle
		}
		if len(chain) > maxExtendsDepth {
			return Descriptor{}, fmt.Errorf("%w: deeper than %d levels", ErrExtendsCycle, maxExtendsDepth)
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	resolved := Descriptor{}
	for i := len(chain) - 1; i >= 0; i-- {
		next, err := Extend(resolved, *chain[i])
		if err != nil {
			return Descriptor{}, err
		}
		resolved = next
	}
	return resolved, nil
}
