// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup through cause chains

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "link_not_found",
			code:    errors.ErrLinkNotFound,
			message: "link does not exist",
			wantStr: "[LINK_NOT_FOUND] link does not exist",
		},
		{
			name:    "ownership",
			code:    errors.ErrOwnership,
			message: "link is not owned by workspace",
			wantStr: "[OWNERSHIP_VIOLATION] link is not owned by workspace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidPath, "cannot expand %s", "~nobody")
	assert.Equal(t, "cannot expand ~nobody", err.Message)
	assert.Equal(t, errors.ErrInvalidPath, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileRemove, "remove"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileRemove, "remove %s", "x"))
	})

	t.Run("cause is kept and printed", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := errors.Wrapf(cause, errors.ErrDirCreate, "create %s", "/home/.config")

		assert.Equal(t, "[DIR_CREATE] create /home/.config: permission denied", err.Error())
		assert.Same(t, cause, stderrors.Unwrap(err))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("boom"), errors.ErrLinkExists, "exists")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrLinkExists, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrLinkNotFound, "")))
}

func TestIsErrorCodeWalksChain(t *testing.T) {
	inner := errors.New(errors.ErrNotASymlink, "regular file")
	outer := errors.Wrap(inner, errors.ErrInternal, "delete failed")
	wrapped := fmt.Errorf("context: %w", outer)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrInternal))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrNotASymlink))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrOwnership))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrInternal))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrInternal))
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrParentPathConflict, "parent is a file").
		WithDetail("link", "/home/.config/app/rc").
		WithDetail("step", "parent")

	assert.Equal(t, errors.ErrParentPathConflict, errors.GetErrorCode(err))
	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/home/.config/app/rc", details["link"])
	assert.Equal(t, "parent", details["step"])

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
	assert.Nil(t, errors.GetErrorDetails(fmt.Errorf("plain")))
}

func TestWithDetailOnZeroValue(t *testing.T) {
	err := &errors.IdotError{Code: errors.ErrInternal, Message: "x"}
	err.WithDetail("k", 1)
	assert.Equal(t, 1, err.Details["k"])
}
