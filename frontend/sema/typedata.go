package sema

import (
	"fmt"
	"maps"

	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/common"
)

// TypeInfo is the type of one class attribute: AttrType or MethodType.
type TypeInfo interface {
	isTypeInfo()
	String() string
}

// AttrType is the qualified type of a member.
type AttrType string

func (AttrType) isTypeInfo() {}

func (t AttrType) String() string { return string(t) }

type MethodType struct {
	Returns string
	Params  []string
}

func (MethodType) isTypeInfo() {}

func (t MethodType) String() string {
	return fmt.Sprintf("%s%v", t.Returns, t.Params)
}

// Attrs maps attribute names to their types.
type Attrs map[string]TypeInfo

// TypeData is the flattened attribute table of every class, keyed by
// qualified typename.
type TypeData map[string]Attrs

type extractor struct {
	classes  map[string]*ast.Class
	data     TypeData
	visiting map[string]struct{}
}

// ExtractTypeData flattens inheritance: every class gets its base's table
// plus its own members and methods. The result always contains
// ast.ObjectType with no attributes.
func ExtractTypeData(classes []*ast.Class) (data TypeData, err error) {
	defer catch(&err)

	ex := &extractor{
		classes:  make(map[string]*ast.Class, len(classes)),
		data:     TypeData{ast.ObjectType: Attrs{}},
		visiting: make(map[string]struct{}),
	}
	for _, cls := range classes {
		name := cls.QualifiedTypename()
		if name == ast.ObjectType {
			panicf(cls.Span(), "cannot redefine %s", ast.ObjectType)
		}
		if _, ok := ex.classes[name]; ok {
			panicf(cls.Span(), "duplicate class: %s", name)
		}
		ex.classes[name] = cls
	}
	for _, cls := range classes {
		ex.resolve(cls.QualifiedTypename(), cls.Span())
	}
	return ex.data, nil
}

// resolve returns the flattened table of name; ref is where name was
// mentioned.
func (ex *extractor) resolve(name string, ref common.Span) Attrs {
	if attrs, ok := ex.data[name]; ok {
		return attrs
	}
	cls, ok := ex.classes[name]
	if !ok {
		panicf(ref, "unknown base type: %s", name)
	}
	if _, ok := ex.visiting[name]; ok {
		panicf(cls.Span(), "infinite recursion in inheritance: %s", name)
	}
	ex.visiting[name] = struct{}{}

	attrs := maps.Clone(ex.resolve(cls.BaseTypename(), cls.Span()))
	for _, member := range cls.Members {
		if _, ok := attrs[member.Name]; ok {
			panicf(member.Span(), "tried to define duplicate member: %s.%s", cls.Name, member.Name)
		}
		attrs[member.Name] = AttrType(member.Type)
	}
	for _, method := range cls.Methods {
		if _, ok := attrs[method.Name].(AttrType); ok {
			panicf(method.Span(), "tried to hide member by defining method: %s.%s(..)", cls.Name, method.Name)
		}
		attrs[method.Name] = MethodType{Returns: method.Returns, Params: method.ParamTypes()}
	}

	delete(ex.visiting, name)
	ex.data[name] = attrs
	return attrs
}
