package cmd

import (
	"fmt"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/pkg/errors"
	"io"
)

// reporter prints the failures of individual terms and keeps going.
// Errors that do not come from the interpreter itself are returned instead.
type reporter struct {
	out    io.Writer
	errs   *stlcerr.Errors
	failed int
	total  int
}

func (r *reporter) report(source string, err error) error {
	r.total++
	if err == nil {
		return nil
	}
	var stlcErr stlcerr.StlcError
	if !errors.As(err, &stlcErr) {
		return err
	}
	r.failed++
	r.errs = r.errs.With(stlcErr)
	_, _ = fmt.Fprintf(r.out, "%v\n%s\n", err, stlcerr.FormatWithSource(stlcErr, source))
	return nil
}

func (r *reporter) result() error {
	if !r.errs.HasError() {
		return nil
	}
	return fmt.Errorf("%d of %d terms failed", r.failed, r.total)
}
