package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	As            = errors.As
	Cause         = errors.Cause
	CombineErrors = errors.CombineErrors
	Errorf        = errors.Errorf
	Is            = errors.Is
	Mark          = errors.Mark
	New           = errors.New
	Newf          = errors.Newf
	Unwrap        = errors.Unwrap
	WithMessage   = errors.WithMessage
	WithMessagef  = errors.WithMessagef
	WithStack     = errors.WithStack
	Wrap          = errors.Wrap
	Wrapf         = errors.Wrapf
)
