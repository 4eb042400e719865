package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Snapshot is the serializable form of a universe. Class IDs are positional,
// so a snapshot restored into a fresh universe yields identical IDs; the
// builtin slots are recovered by name.
type Snapshot struct {
	Classes []Class
}

// Snapshot captures the universe's class table.
func (u *Universe) Snapshot() Snapshot {
	return Snapshot{Classes: u.classes}
}

// Restore rebuilds a universe from a snapshot. It fails when the snapshot is
// missing the builtin classes a freshly seeded universe carries, which guards
// against payloads written by an incompatible builtin set.
func Restore(s Snapshot) (*Universe, error) {
	if len(s.Classes) == 0 {
		return nil, fmt.Errorf("empty snapshot")
	}
	if _, err := safecast.Conv[uint32](len(s.Classes)); err != nil {
		return nil, fmt.Errorf("snapshot size overflow: %w", err)
	}
	u := &Universe{
		classes: s.Classes,
		byName:  make(map[string]ClassID, len(s.Classes)),
		arrays:  make(map[ClassID]ClassID, 8),
	}
	for i := range u.classes {
		c := &u.classes[i]
		id := ClassID(i)
		if c.Name != "" {
			if _, taken := u.byName[c.Name]; !taken {
				u.byName[c.Name] = id
			}
		}
		if c.Kind == KindArray && c.Component.IsValid() {
			if _, taken := u.arrays[c.Component]; !taken {
				u.arrays[c.Component] = id
			}
		}
	}

	b := &u.builtins
	for _, slot := range []struct {
		dst  *ClassID
		name string
	}{
		{&b.Object, "breeze.lang.Object"},
		{&b.Class, "breeze.lang.Class"},
		{&b.Closure, "breeze.lang.Closure"},
		{&b.String, "breeze.lang.String"},
		{&b.Pattern, "breeze.text.Pattern"},
		{&b.Void, "void"},
		{&b.Null, "null"},
		{&b.BigDecimal, "breeze.math.BigDecimal"},
		{&b.BigInteger, "breeze.math.BigInteger"},
		{&b.Boolean, "breeze.lang.Boolean"},
		{&b.Integer, "breeze.lang.Integer"},
		{&b.Long, "breeze.lang.Long"},
		{&b.Short, "breeze.lang.Short"},
		{&b.Byte, "breeze.lang.Byte"},
		{&b.Character, "breeze.lang.Character"},
		{&b.Double, "breeze.lang.Double"},
		{&b.Float, "breeze.lang.Float"},
		{&b.BoolPrim, "bool"},
		{&b.IntPrim, "int"},
		{&b.LongPrim, "long"},
		{&b.ShortPrim, "short"},
		{&b.BytePrim, "byte"},
		{&b.CharPrim, "char"},
		{&b.DoublePrim, "double"},
		{&b.FloatPrim, "float"},
	} {
		id, ok := u.byName[slot.name]
		if !ok {
			return nil, fmt.Errorf("snapshot missing builtin %q", slot.name)
		}
		*slot.dst = id
	}
	return u, nil
}
