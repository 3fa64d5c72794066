package sema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/parser"
	"github.com/math4tots-misc/slumber/frontend/sema"
)

func classesOf(t *testing.T, texts ...string) []*ast.Class {
	t.Helper()
	var classes []*ast.Class
	for _, text := range texts {
		mod, err := parser.Parse(common.NewSource("<test>", text))
		require.NoError(t, err)
		classes = append(classes, mod.Classes...)
	}
	return classes
}

func semanticError(t *testing.T, err error) *common.CompileError {
	t.Helper()
	require.Error(t, err)
	var ce *common.CompileError
	require.True(t, errors.As(err, &ce), "want *CompileError, got %T", err)
	assert.Equal(t, common.Semantic, ce.Kind)
	return ce
}

func method(returns string, params ...string) sema.MethodType {
	return sema.MethodType{Returns: returns, Params: params}
}

// nil and empty parameter lists are the same signature
var cmpOpts = cmpopts.EquateEmpty()

func TestExtractTypeDataSimple(t *testing.T) {
	classes := classesOf(t, `
	package local;
	class A {
		int x;
		void f() {}
	}
	`)
	data, err := sema.ExtractTypeData(classes)
	require.NoError(t, err)

	want := sema.TypeData{
		"local.A": {
			"x": sema.AttrType("int"),
			"f": method("void"),
		},
		"bb.lang.Object": {},
	}
	if diff := cmp.Diff(want, data, cmpOpts); diff != "" {
		t.Errorf("type data mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTypeDataInheritance(t *testing.T) {
	classes := classesOf(t, `
	package local;
	class A {
		int x;
		void f() {}
		void h() {}
	}
	class B extends A {
		float y;
		String g(int y) {}

		String h(int y) {
			'''Overrides A.h with a different signature.''';
		}
	}
	`)
	data, err := sema.ExtractTypeData(classes)
	require.NoError(t, err)

	want := sema.TypeData{
		"local.A": {
			"x": sema.AttrType("int"),
			"f": method("void"),
			"h": method("void"),
		},
		"local.B": {
			"x": sema.AttrType("int"),
			"f": method("void"),
			"y": sema.AttrType("float"),
			"g": method("bb.lang.String", "int"),
			"h": method("bb.lang.String", "int"),
		},
		"bb.lang.Object": {},
	}
	if diff := cmp.Diff(want, data, cmpOpts); diff != "" {
		t.Errorf("type data mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTypeDataDeclarationOrder(t *testing.T) {
	// a derived class may come before its base, even in another module
	classes := classesOf(t,
		`package a; import b.Base; class Derived extends Base { int y; }`,
		`package b; class Base { int x; }`,
	)
	data, err := sema.ExtractTypeData(classes)
	require.NoError(t, err)
	assert.Equal(t, sema.Attrs{"x": sema.AttrType("int"), "y": sema.AttrType("int")}, data["a.Derived"])
	assert.Equal(t, sema.Attrs{"x": sema.AttrType("int")}, data["b.Base"])
}

func TestExtractTypeDataIsIdempotent(t *testing.T) {
	classes := classesOf(t, `
	package local;
	class C extends B { int z; }
	class B extends A { int y; }
	class A { int x; }
	`)
	first, err := sema.ExtractTypeData(classes)
	require.NoError(t, err)
	second, err := sema.ExtractTypeData(classes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first["local.C"], 3)
	assert.Empty(t, first["bb.lang.Object"])
}

func TestMethodMayShadowMethodNotMember(t *testing.T) {
	_, err := sema.ExtractTypeData(classesOf(t, `
	package local;
	class A { int x; }
	class B extends A { void x() {} }
	`))
	ce := semanticError(t, err)
	assert.Equal(t, "tried to hide member by defining method: B.x(..)", ce.Msg)

	_, err = sema.ExtractTypeData(classesOf(t, `
	package local;
	class A { void x() {} }
	class B extends A { int x() {} }
	`))
	assert.NoError(t, err)
}

func TestMemberRedeclarationIsRejected(t *testing.T) {
	cases := map[string]string{
		"direct base": `
		package local;
		class A { int x; }
		class B extends A { int x; }
		`,
		"deep chain": `
		package local;
		class A { int x; }
		class B extends A { }
		class C extends B { float x; }
		`,
		"same class": `
		package local;
		class A { int x; String x; }
		`,
		"member over method": `
		package local;
		class A { void x() {} }
		class B extends A { int x; }
		`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sema.ExtractTypeData(classesOf(t, src))
			ce := semanticError(t, err)
			assert.Contains(t, ce.Msg, "tried to define duplicate member")
		})
	}
}

func TestDuplicateMemberPointsAtMember(t *testing.T) {
	_, err := sema.ExtractTypeData(classesOf(t, "package local;\nclass A {\n  int x;\n  int x;\n}"))
	ce := semanticError(t, err)
	assert.Equal(t, uint32(4), ce.Span.LineStart)
}

func TestInheritanceCycle(t *testing.T) {
	_, err := sema.ExtractTypeData(classesOf(t, `
	package local;
	class A extends B {}
	class B extends A {}
	`))
	ce := semanticError(t, err)
	assert.Regexp(t, `^infinite recursion in inheritance: local\.(A|B)$`, ce.Msg)

	_, err = sema.ExtractTypeData(classesOf(t, `package local; class A extends A {}`))
	ce = semanticError(t, err)
	assert.Equal(t, "infinite recursion in inheritance: local.A", ce.Msg)
}

func TestUnknownBaseAndDuplicates(t *testing.T) {
	_, err := sema.ExtractTypeData(classesOf(t, `package local; class A extends Missing {}`))
	assert.Equal(t, "unknown base type: local.Missing", semanticError(t, err).Msg)

	_, err = sema.ExtractTypeData(classesOf(t, `package local; class A {}`, `package local; class A {}`))
	assert.Equal(t, "duplicate class: local.A", semanticError(t, err).Msg)

	_, err = sema.ExtractTypeData(classesOf(t, `package bb.lang; class Object {}`))
	assert.Equal(t, "cannot redefine bb.lang.Object", semanticError(t, err).Msg)
}

// builtins mirrors the classes the std library would provide.
const builtins = `
package bb.lang;

native class String {
	int size();
}
`

func TestAnnotateExpressions(t *testing.T) {
	data, err := sema.ExtractTypeData(classesOf(t, builtins, `
	package local;

	class Foo {
		String bar;
	}
	`))
	require.NoError(t, err)

	cases := []struct {
		src  string
		kind ast.ExprKind
		want string
	}{
		{"5", ast.ExprKindInt, "int"},
		{"5.5", ast.ExprKindFloat, "float"},
		{`"hi"`, ast.ExprKindString, "bb.lang.String"},
		{`"hi".size()`, ast.ExprKindMethodCall, "int"},
		{"Foo().bar", ast.ExprKindGetAttribute, "bb.lang.String"},
		{"Foo().bar.size()", ast.ExprKindMethodCall, "int"},
		{`Foo().bar = "x"`, ast.ExprKindSetAttribute, "bb.lang.String"},
		{"true", ast.ExprKindBool, "bool"},
		{"null", ast.ExprKindNull, "bb.lang.Object"},
		{"[1, Foo()]", ast.ExprKindList, "bb.lang.List"},
		{"Foo()", ast.ExprKindNew, "local.Foo"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			expr, err := parser.ParseExpr(common.NewSource("<test>", tc.src), parser.NewContext("local"))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, expr.ExprKind())

			a := sema.NewAnnotator(data, nil, sema.Options{})
			got, err := a.VisitExpr(expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			stored, ok := a.Types().Of(expr)
			require.True(t, ok)
			assert.Equal(t, tc.want, stored)
		})
	}
}

func TestExpressionErrors(t *testing.T) {
	data, err := sema.ExtractTypeData(classesOf(t, builtins, `
	package local;
	class Foo {
		String bar;
		static int count;
		void run() {}
		static void make() {}
	}
	`))
	require.NoError(t, err)

	cases := []struct {
		src string
		msg string
	}{
		{"x", "no such variable named 'x' at this scope"},
		{"x = 1", "no such variable named 'x' at this scope"},
		{"Foo().baz", "no such attribute baz for type local.Foo"},
		{"Bar().baz", "no such type: local.Bar"},
		{"(5).size()", "no such type: int"},
		{"Foo().bar()", "tried to call attribute like a method: local.Foo.bar"},
		{"Foo().run", "tried to use method like an attribute: local.Foo.run"},
		{"Foo().run = 1", "tried to use method like an attribute: local.Foo.run"},
		{"Foo.make", "tried to use method like a static attribute: local.Foo.make"},
		{"Foo.count()", "tried to call attribute like a method: local.Foo.count"},
		{"this", "'this' used outside of a class"},
		{"super.run()", "'super' used outside of a class"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			expr, err := parser.ParseExpr(common.NewSource("<test>", tc.src), parser.NewContext("local"))
			require.NoError(t, err)
			_, err = sema.NewAnnotator(data, nil, sema.Options{}).VisitExpr(expr)
			assert.Equal(t, tc.msg, semanticError(t, err).Msg)
		})
	}
}

func TestStaticAccess(t *testing.T) {
	data, err := sema.ExtractTypeData(classesOf(t, `
	package local;
	class Foo {
		static float ratio;
		static Foo make() {}
	}
	`))
	require.NoError(t, err)
	for src, want := range map[string]string{
		"Foo.ratio":       "float",
		"Foo.ratio = 2.0": "float",
		"Foo.make()":      "local.Foo",
	} {
		expr, err := parser.ParseExpr(common.NewSource("<test>", src), parser.NewContext("local"))
		require.NoError(t, err)
		got, err := sema.NewAnnotator(data, nil, sema.Options{}).VisitExpr(expr)
		require.NoError(t, err)
		assert.Equal(t, want, got, src)
	}
}

func TestLiteralAnnotationIsIdempotent(t *testing.T) {
	data, err := sema.ExtractTypeData(nil)
	require.NoError(t, err)

	lit, err := parser.ParseExpr(common.NewSource("<test>", "5"), parser.NewContext("p"))
	require.NoError(t, err)

	types := sema.NewTypes()
	require.True(t, types.Set(lit, "p.Counter"))

	a := sema.NewAnnotator(data, types, sema.Options{})
	for range 2 {
		got, err := a.VisitExpr(lit)
		require.NoError(t, err)
		assert.Equal(t, "p.Counter", got)
	}
	assert.Equal(t, 1, types.Len())
	assert.False(t, types.Set(lit, "int"))
}

func TestDeclaredVariables(t *testing.T) {
	data, err := sema.ExtractTypeData(nil)
	require.NoError(t, err)
	a := sema.NewAnnotator(data, nil, sema.Options{})
	a.Declare("n", "int")

	expr, err := parser.ParseExpr(common.NewSource("<test>", "n = 3"), parser.NewContext("p"))
	require.NoError(t, err)
	got, err := a.VisitExpr(expr)
	require.NoError(t, err)
	assert.Equal(t, "int", got)
}

const program = `
package local;

class Base {
	int count;
	static int total;
	int get() { return this.count; }
}

class Derived extends Base {
	String label;

	int get() {
		"Overrides Base.get";
		int n = super.get();
		Derived other = Derived();
		other.label = "x";
		List items = [1, 2.5, null, true];
		while (false) { n = other.get(); }
		if (true) {
			return n;
		} else {
			return Derived.total;
		}
	}

	void set(int value) {
		this.count = value;
	}
}
`

// typesByKind collects the deduced types of every expression in cls, keyed
// by kind.
func typesByKind(t *testing.T, types *sema.Types, cls *ast.Class) map[ast.ExprKind][]string {
	t.Helper()
	out := make(map[ast.ExprKind][]string)
	for _, m := range cls.Methods {
		ast.WalkExprs(m.Body, func(e ast.Expr) {
			typ, ok := types.Of(e)
			require.True(t, ok, "%s at %s has no type", e.ExprKind(), e.Span())
			out[e.ExprKind()] = append(out[e.ExprKind()], typ)
		})
	}
	return out
}

func TestAnnotateProgram(t *testing.T) {
	classes := classesOf(t, program)
	types, err := sema.Annotate(classes, sema.Options{})
	require.NoError(t, err)

	base := typesByKind(t, types, classes[0])
	assert.Equal(t, []string{"local.Base"}, base[ast.ExprKindThis])
	assert.Equal(t, []string{"int"}, base[ast.ExprKindGetAttribute])

	derived := typesByKind(t, types, classes[1])
	assert.Equal(t, []string{"int"}, derived[ast.ExprKindSuperMethodCall])
	assert.Equal(t, []string{"local.Derived"}, derived[ast.ExprKindNew])
	assert.Equal(t, []string{"bb.lang.String", "int"}, derived[ast.ExprKindSetAttribute])
	assert.Equal(t, []string{"bb.lang.List"}, derived[ast.ExprKindList])
	assert.Equal(t, []string{"bb.lang.Object"}, derived[ast.ExprKindNull])
	assert.Equal(t, []string{"int"}, derived[ast.ExprKindAssign])
	assert.Equal(t, []string{"int"}, derived[ast.ExprKindMethodCall])
	assert.Equal(t, []string{"int"}, derived[ast.ExprKindGetStaticAttribute])
	assert.Equal(t, []string{"local.Derived"}, derived[ast.ExprKindThis])
	assert.ElementsMatch(t, []string{"local.Derived", "local.Derived", "int", "int"}, derived[ast.ExprKindName])
}

func TestNativeAndInterfaceAreSkipped(t *testing.T) {
	types, err := sema.Annotate(classesOf(t, builtins, `
	package local;
	interface Sized { int size(); }
	`), sema.Options{})
	require.NoError(t, err)
	assert.Zero(t, types.Len())
}

func TestUndeclaredVariableNamesIt(t *testing.T) {
	_, err := sema.Annotate(classesOf(t, `
	package local;
	class A { void f() { missing; } }
	`), sema.Options{})
	ce := semanticError(t, err)
	assert.Contains(t, ce.Msg, "missing")
}

func TestBlockScopes(t *testing.T) {
	src := `
	package local;
	class A {
		void f() {
			{ int x = 1; }
			x;
		}
	}
	`
	_, err := sema.Annotate(classesOf(t, src), sema.Options{})
	assert.NoError(t, err)

	_, err = sema.Annotate(classesOf(t, src), sema.Options{BlockScopes: true})
	assert.Equal(t, "no such variable named 'x' at this scope", semanticError(t, err).Msg)
}

func TestScopesDoNotLeakBetweenMethods(t *testing.T) {
	_, err := sema.Annotate(classesOf(t, `
	package local;
	class A {
		void f(int n) { int m = n; }
		void g() { m; }
	}
	`), sema.Options{})
	assert.Equal(t, "no such variable named 'm' at this scope", semanticError(t, err).Msg)
}

func collect(types *sema.Types) map[ast.Expr]string {
	out := make(map[ast.Expr]string)
	for e, typ := range types.All() {
		out[e] = typ
	}
	return out
}

func TestAnnotateParallelMatchesAnnotate(t *testing.T) {
	classes := classesOf(t, program, `
	package other;
	import local.Base;
	class C extends Base { int twice() { return this.get(); } }
	class D { D self() { return this; } }
	`)
	seq, err := sema.Annotate(classes, sema.Options{})
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		par, err := sema.AnnotateParallel(context.Background(), classes, sema.Options{}, workers)
		require.NoError(t, err)
		assert.Equal(t, collect(seq), collect(par), "workers=%d", workers)
	}
}

func TestAnnotateParallelReportsEarliestError(t *testing.T) {
	classes := classesOf(t, `
	package local;
	class A { void f() { a; } }
	class B { void f() { b; } }
	class C { void f() { c; } }
	`)
	_, seqErr := sema.Annotate(classes, sema.Options{})
	_, parErr := sema.AnnotateParallel(context.Background(), classes, sema.Options{}, 3)
	require.Error(t, parErr)
	assert.Equal(t, seqErr.Error(), parErr.Error())
}

func TestAnnotateParallelHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sema.AnnotateParallel(ctx, classesOf(t, program), sema.Options{}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckCollectsOneErrorPerClass(t *testing.T) {
	classes := classesOf(t, `
	package local;
	class A { void f() { a; b; } }
	class B { int f() { return 1; } }
	class C { void f() { c; } }
	`)
	types, errs := sema.Check(classes, sema.Options{})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "'a'")
	assert.Contains(t, errs[1].Error(), "'c'")
	assert.Equal(t, 1, types.Len())

	_, errs = sema.Check(classesOf(t, `package local; class A extends A {}`), sema.Options{})
	require.Len(t, errs, 1)
}

func TestTypeInfoString(t *testing.T) {
	assert.Equal(t, "int", sema.AttrType("int").String())
	assert.Equal(t, "void[int bb.lang.String]", method("void", "int", "bb.lang.String").String())
}
