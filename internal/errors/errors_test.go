package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := InvalidInput("unknown column \"depthx\"")
	wrapped := Wrap(fmt.Errorf("histogram: %w", inner), "graph callback failed")

	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
	assert.Contains(t, wrapped.Error(), "graph callback failed")
	assert.Contains(t, wrapped.Error(), "depthx")
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(stderrors.New("disk gone"), "read %s", "data.csv")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "read data.csv: disk gone", wrapped.Error())

	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("bad tab")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ValidationError("bad bins")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("column price")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(DataInvalid("ragged row")))
}
