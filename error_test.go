package docscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docscrape.Errorf(docscrape.ENOTFOUND, "run %q not found", "test")

	assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	assert.Equal(t, "run \"test\" not found", docscrape.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("keeps cause reachable", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("permission denied")
		err := docscrape.WrapError(docscrape.EDIRECTORY, cause, "failed to create %s", "docs_example_com")

		assert.Equal(t, docscrape.EDIRECTORY, docscrape.ErrorCode(err))
		assert.Equal(t, "failed to create docs_example_com", docscrape.ErrorMessage(err))
		assert.Equal(t, "failed to create docs_example_com: permission denied", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("context: %w", docscrape.Errorf(docscrape.EFETCH, "boom"))

		assert.Equal(t, docscrape.EFETCH, docscrape.ErrorCode(err))
		assert.Equal(t, "boom", docscrape.ErrorMessage(err))
	})
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorCode(nil))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorCode(errors.New("plain")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorMessage(nil))
}

func TestErrorMessage_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", docscrape.ErrorMessage(errors.New("plain")))
}
