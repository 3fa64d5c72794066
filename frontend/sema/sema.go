// Package sema flattens class inheritance into a TypeData table and deduces
// the static type of every expression in method bodies.
package sema

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/math4tots-misc/slumber/frontend/ast"
)

// Annotate builds the type table of classes and annotates each class with a
// fresh Annotator, stopping at the first error.
func Annotate(classes []*ast.Class, opts Options) (*Types, error) {
	data, err := ExtractTypeData(classes)
	if err != nil {
		return nil, err
	}
	types := NewTypes()
	for _, cls := range classes {
		if err := NewAnnotator(data, types, opts).VisitClass(cls); err != nil {
			return nil, err
		}
	}
	return types, nil
}

// AnnotateParallel is Annotate with up to workers classes annotated at once.
// Each class gets a private table and the tables are merged in input order.
// The error returned is the one of the earliest failing class, the same one
// Annotate reports. workers <= 0 annotates sequentially.
func AnnotateParallel(ctx context.Context, classes []*ast.Class, opts Options, workers int) (*Types, error) {
	if workers <= 0 {
		return Annotate(classes, opts)
	}
	data, err := ExtractTypeData(classes)
	if err != nil {
		return nil, err
	}

	results := make([]*Types, len(classes))
	errs := make([]error, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cls := range classes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a := NewAnnotator(data, nil, opts)
			errs[i] = a.VisitClass(cls)
			results[i] = a.Types()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	types := NewTypes()
	for i, res := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		types.Merge(res)
	}
	return types, nil
}

// Check annotates every class and reports one error per failing class
// instead of stopping at the first. Types of the classes that passed are
// still returned. A TypeData error is the only error in that case.
func Check(classes []*ast.Class, opts Options) (*Types, []error) {
	data, err := ExtractTypeData(classes)
	if err != nil {
		return nil, []error{err}
	}
	types := NewTypes()
	var errs []error
	for _, cls := range classes {
		a := NewAnnotator(data, nil, opts)
		if err := a.VisitClass(cls); err != nil {
			errs = append(errs, err)
			continue
		}
		types.Merge(a.Types())
	}
	return types, errs
}
