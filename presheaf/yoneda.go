package presheaf

import (
	"fmt"
	"strings"

	"github.com/ktynski/firm/universe"
)

// Embedded is the Yoneda embedding of a base object: the object paired
// with its hom functor Hom(-, object).
type Embedded struct {
	Object     string
	HomFunctor Structure
}

// YonedaReport carries the four full-faithfulness checks. Each flag is
// computed from the registered embeddings; with no embeddings every
// flag is false.
type YonedaReport struct {
	Faithfulness bool
	Fullness     bool
	Naturality   bool
	Isomorphism  bool
}

// levelObjectID names the base-category object for one universe level.
func levelObjectID(n int) string {
	return fmt.Sprintf("level_%d", n)
}

// homElement labels the single arrow of Hom(level_n, object) tracked
// by this approximation.
func homElement(n int, object string) Element {
	return Element(fmt.Sprintf("hom(%s,%s)", levelObjectID(n), object))
}

// buildHomFunctor approximates Hom(-, object) over the hierarchy's
// levels: one arrow per level, restricted along level inclusions.
func buildHomFunctor(object string, h *universe.Hierarchy) Structure {
	fibers := make(map[string][]Element, h.Len())
	transforms := make(map[string]Transform, 2*h.Len())

	for n := 0; n < h.Len(); n++ {
		level := levelObjectID(n)
		fibers[level] = []Element{homElement(n, object)}
		transforms[identityKeyPrefix+level] = IdentityTransform()
	}
	for n := 1; n < h.Len(); n++ {
		transforms[restrictionKey(n, n-1)] = restriction(n, n-1)
	}

	s, err := New(homFunctorName(object), KindRepresentable, fibers, transforms, object)
	if err != nil {
		// Unreachable: the name and representing object are non-empty
		// by construction.
		panic(err)
	}
	return s
}

// homFunctorName is the registry name of the hom functor for object.
func homFunctorName(object string) string {
	return "Hom(-," + object + ")"
}

// restrictionKey names the transform restricting arrows from level
// from down to level to.
func restrictionKey(from, to int) string {
	return fmt.Sprintf("restrict_%d_%d", from, to)
}

// restriction rewrites the level tag inside hom arrow labels. The
// parenthesis and comma anchor the rewrite so level indices that are
// prefixes of each other cannot collide.
func restriction(from, to int) Transform {
	source := "(" + levelObjectID(from) + ","
	target := "(" + levelObjectID(to) + ","
	return NewTransform(restrictionKey(from, to), func(e Element) Element {
		return Element(strings.Replace(string(e), source, target, 1))
	})
}
