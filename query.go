package stockpile

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// queryCore is the arity-independent half of every QueryN: store resolution,
// driver selection, and the cursor walk. The typed shells in
// query_arities.go embed it and add only pointer fetching.
//
// The driver is the smallest of the requested stores; its dense entity list
// is walked and each candidate is accepted with a single mask check against
// the include mask, instead of one probe per remaining store.
type queryCore struct {
	reg     *Registry
	types   []reflect.Type
	include mask.Mask
	views   []storeView
	driver  storeView
	pos     int
	cur     EntityID
	empty   bool
}

func newQueryCore(r *Registry, types ...reflect.Type) queryCore {
	for i, t := range types {
		for _, u := range types[i+1:] {
			if t == u {
				panic("stockpile: duplicate component type " + t.String() + " in query")
			}
		}
	}
	c := queryCore{reg: r, types: types, pos: -1}
	c.resolve()
	return c
}

// resolve re-reads store state; queries constructed before a type's first
// attach become non-empty after a Reset.
func (c *queryCore) resolve() {
	c.include = mask.Mask{}
	c.views = c.views[:0]
	c.driver = nil
	c.empty = false
	for _, t := range c.types {
		view, ok := c.reg.stores[t]
		if !ok {
			// A type never attached to any entity matches nothing.
			c.empty = true
			return
		}
		row, _ := c.reg.schema.rowOf(t)
		c.include.Mark(row)
		c.views = append(c.views, view)
		if c.driver == nil || view.Len() < c.driver.Len() {
			c.driver = view
		}
	}
}

// next advances the cursor to the next entity holding every requested type.
func (c *queryCore) next() bool {
	if c.empty {
		return false
	}
	dense := c.driver.Entities()
	for c.pos+1 < len(dense) {
		c.pos++
		e := dense[c.pos]
		if c.reg.maskOf(e).ContainsAll(c.include) {
			c.cur = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor. Only valid after next reported
// true.
func (c *queryCore) Entity() EntityID {
	return c.cur
}

// reset rewinds the cursor and re-resolves stores and driver.
func (c *queryCore) reset() {
	c.pos = -1
	c.resolve()
}

// count walks the whole match set without disturbing the cursor.
func (c *queryCore) count() int {
	if c.empty {
		return 0
	}
	n := 0
	for _, e := range c.driver.Entities() {
		if c.reg.maskOf(e).ContainsAll(c.include) {
			n++
		}
	}
	return n
}
