// Package component defines the canonical semantic model of a component's
// public API: the closed type system, the definition kinds, and the
// ComponentInterface registry that every front end populates and every
// backend renders.
//
// A ComponentInterface is built by running front-end syntax nodes through
// their APIConverter implementations and registering the results. Once all
// source nodes are converted it is complete and treated as immutable;
// backends query it read-only, so independent renders of the same
// interface may run concurrently.
package component

import (
	"iter"

	"github.com/glossa-dev/glossa/errors"
)

type defKey struct {
	kind string
	name string
}

// ComponentInterface is the ordered, deduplicated registry of all
// definitions in one component, plus its declared namespace.
type ComponentInterface struct {
	namespace string

	errs      []*Error
	enums     []*Enum
	records   []*Record
	objects   []*Object
	callbacks []*CallbackInterface
	functions []*Function

	registered map[defKey]struct{}
}

// New creates an empty ComponentInterface for the given namespace.
func New(namespace string) *ComponentInterface {
	return &ComponentInterface{
		namespace:  namespace,
		registered: make(map[defKey]struct{}),
	}
}

// Namespace returns the component's declared namespace name.
func (ci *ComponentInterface) Namespace() string {
	return ci.namespace
}

// register reserves (kind, name). Name uniqueness is enforced per kind, so
// an error and a record may share a name but two errors may not.
func (ci *ComponentInterface) register(kind, name string) error {
	key := defKey{kind: kind, name: name}
	if _, exists := ci.registered[key]; exists {
		return errors.NewDuplicateDefinition(kind, name)
	}
	ci.registered[key] = struct{}{}
	return nil
}

// RegisterError adds an error definition to the interface.
func (ci *ComponentInterface) RegisterError(e *Error) error {
	if err := ci.register(ErrorKind.Label(), e.Name); err != nil {
		return err
	}
	ci.errs = append(ci.errs, e)
	return nil
}

// RegisterEnum adds an enum definition to the interface.
func (ci *ComponentInterface) RegisterEnum(e *Enum) error {
	if err := ci.register(EnumKind.Label(), e.Name); err != nil {
		return err
	}
	ci.enums = append(ci.enums, e)
	return nil
}

// RegisterRecord adds a record definition to the interface.
func (ci *ComponentInterface) RegisterRecord(r *Record) error {
	if err := ci.register(RecordKind.Label(), r.Name); err != nil {
		return err
	}
	ci.records = append(ci.records, r)
	return nil
}

// RegisterObject adds an object definition to the interface.
func (ci *ComponentInterface) RegisterObject(o *Object) error {
	if err := ci.register(ObjectKind.Label(), o.Name); err != nil {
		return err
	}
	ci.objects = append(ci.objects, o)
	return nil
}

// RegisterCallbackInterface adds a callback interface definition.
func (ci *ComponentInterface) RegisterCallbackInterface(cb *CallbackInterface) error {
	if err := ci.register(CallbackKind.Label(), cb.Name); err != nil {
		return err
	}
	ci.callbacks = append(ci.callbacks, cb)
	return nil
}

// RegisterFunction adds a namespace-level function definition.
func (ci *ComponentInterface) RegisterFunction(f *Function) error {
	if err := ci.register("function", f.Name); err != nil {
		return err
	}
	ci.functions = append(ci.functions, f)
	return nil
}

// GetErrorDefinition returns the registered error of that name.
func (ci *ComponentInterface) GetErrorDefinition(name string) (*Error, error) {
	for _, e := range ci.errs {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, errors.NewUnresolvedReference(ErrorKind.Label(), name)
}

// GetEnumDefinition returns the registered enum of that name.
func (ci *ComponentInterface) GetEnumDefinition(name string) (*Enum, error) {
	for _, e := range ci.enums {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, errors.NewUnresolvedReference(EnumKind.Label(), name)
}

// GetRecordDefinition returns the registered record of that name.
func (ci *ComponentInterface) GetRecordDefinition(name string) (*Record, error) {
	for _, r := range ci.records {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, errors.NewUnresolvedReference(RecordKind.Label(), name)
}

// GetObjectDefinition returns the registered object of that name.
func (ci *ComponentInterface) GetObjectDefinition(name string) (*Object, error) {
	for _, o := range ci.objects {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, errors.NewUnresolvedReference(ObjectKind.Label(), name)
}

// GetCallbackInterfaceDefinition returns the registered callback interface
// of that name.
func (ci *ComponentInterface) GetCallbackInterfaceDefinition(name string) (*CallbackInterface, error) {
	for _, cb := range ci.callbacks {
		if cb.Name == name {
			return cb, nil
		}
	}
	return nil, errors.NewUnresolvedReference(CallbackKind.Label(), name)
}

// Iteration order is registration order: backends render definitions in
// the order declared, which is user-significant and required for
// deterministic output across runs. Sequences are restartable; ranging
// twice yields the same elements.

// IterErrorDefinitions yields every error definition in registration order.
func (ci *ComponentInterface) IterErrorDefinitions() iter.Seq[*Error] {
	return seq(ci.errs)
}

// IterEnumDefinitions yields every enum definition in registration order.
func (ci *ComponentInterface) IterEnumDefinitions() iter.Seq[*Enum] {
	return seq(ci.enums)
}

// IterRecordDefinitions yields every record definition in registration order.
func (ci *ComponentInterface) IterRecordDefinitions() iter.Seq[*Record] {
	return seq(ci.records)
}

// IterObjectDefinitions yields every object definition in registration order.
func (ci *ComponentInterface) IterObjectDefinitions() iter.Seq[*Object] {
	return seq(ci.objects)
}

// IterCallbackInterfaceDefinitions yields every callback interface in
// registration order.
func (ci *ComponentInterface) IterCallbackInterfaceDefinitions() iter.Seq[*CallbackInterface] {
	return seq(ci.callbacks)
}

// IterFunctionDefinitions yields every namespace function in registration
// order.
func (ci *ComponentInterface) IterFunctionDefinitions() iter.Seq[*Function] {
	return seq(ci.functions)
}

func seq[T any](items []*T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// ResolveType checks that every named kind reachable from t resolves to a
// registered definition of the matching kind. Composite kinds are walked
// recursively.
func (ci *ComponentInterface) ResolveType(t Type) error {
	switch ty := t.(type) {
	case Primitive:
		return nil
	case Named:
		if _, ok := ci.registered[defKey{kind: ty.Kind.Label(), name: ty.Name}]; !ok {
			return errors.NewUnresolvedReference(ty.Kind.Label(), ty.Name)
		}
		return nil
	case Optional:
		return ci.ResolveType(ty.Inner)
	case Sequence:
		return ci.ResolveType(ty.Inner)
	case MapType:
		return ci.ResolveType(ty.Value)
	}
	return errors.AssertionFailedf("unhandled type variant %T", t)
}

// Validate resolves every type reference in the interface. Front ends may
// register definitions in any order relative to their mutual references,
// so this runs once the interface is complete, before rendering.
func (ci *ComponentInterface) Validate() error {
	check := func(t Type, owner string) error {
		if t == nil {
			return nil
		}
		if err := ci.ResolveType(t); err != nil {
			return errors.Wrapf(err, "in %s", owner)
		}
		return nil
	}
	checkCallable := func(owner string, args []Argument, ret Type, throws string) error {
		for _, a := range args {
			if err := check(a.Type, owner); err != nil {
				return err
			}
		}
		if err := check(ret, owner); err != nil {
			return err
		}
		if throws != "" {
			if _, err := ci.GetErrorDefinition(throws); err != nil {
				return errors.Wrapf(err, "in %s", owner)
			}
		}
		return nil
	}

	for _, r := range ci.records {
		for _, f := range r.Fields {
			if err := check(f.Type, "record "+r.Name); err != nil {
				return err
			}
		}
	}
	for _, o := range ci.objects {
		for _, c := range o.Constructors {
			if err := checkCallable("object "+o.Name, c.Args, nil, c.Throws); err != nil {
				return err
			}
		}
		for _, m := range o.Methods {
			if err := checkCallable("object "+o.Name+"."+m.Name, m.Args, m.Return, m.Throws); err != nil {
				return err
			}
		}
	}
	for _, cb := range ci.callbacks {
		for _, m := range cb.Methods {
			if err := checkCallable("callback interface "+cb.Name+"."+m.Name, m.Args, m.Return, m.Throws); err != nil {
				return err
			}
		}
	}
	for _, fn := range ci.functions {
		if err := checkCallable("function "+fn.Name, fn.Args, fn.Return, fn.Throws); err != nil {
			return err
		}
	}
	return nil
}
