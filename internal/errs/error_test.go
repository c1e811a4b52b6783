package errs_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"library-manager/internal/errs"
)

func TestWithKey(t *testing.T) {
	t.Parallel()
	err := errs.WithKey(errs.ErrNotFound, "book.bookNotFound")

	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Equal(t, "book.bookNotFound", errs.MessageKey(err))
	require.Equal(t, "not found: book.bookNotFound", err.Error())
}

func TestMessageKey_SurvivesWrapping(t *testing.T) {
	t.Parallel()
	err := errors.Wrap(errs.WithKey(errs.ErrBadRequest, "validation.common.badObject"), "create lend")

	require.ErrorIs(t, err, errs.ErrBadRequest)
	require.Equal(t, "validation.common.badObject", errs.MessageKey(err))
}

func TestMessageKey_NoKey(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", errs.MessageKey(errors.New("db internal")))
	require.Equal(t, "", errs.MessageKey(nil))
}
