package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"library-manager/locales"
	"library-manager/pkg/i18n"
)

func TestTranslator_Resolve(t *testing.T) {
	t.Parallel()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)

	require.Equal(t, "Book not found", tr.Resolve("book.bookNotFound"))
	require.Equal(t, "This book is already lent out", tr.Resolve("lendBook.bookAlreadyLended"))
}

func TestTranslator_Polish(t *testing.T) {
	t.Parallel()
	tr, err := i18n.NewTranslator(locales.FS, "pl")
	require.NoError(t, err)

	require.Equal(t, "Nie znaleziono książki", tr.Resolve("book.bookNotFound"))
}

func TestTranslator_UnknownLangFallsBackToEnglish(t *testing.T) {
	t.Parallel()
	tr, err := i18n.NewTranslator(locales.FS, "de")
	require.NoError(t, err)

	require.Equal(t, "Book not found", tr.Resolve("book.bookNotFound"))
}

func TestTranslator_UnknownKeyFallsBackToKey(t *testing.T) {
	t.Parallel()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)

	require.Equal(t, "no.such.key", tr.Resolve("no.such.key"))
}
