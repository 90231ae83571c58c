package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/seqlist/pkg/core"
)

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "SequenceList: collection is empty", core.NewEmptyCollection("SequenceList").Error())
	assert.Equal(t, "element not found: 3", core.NewElementNotFound(3).Error())
	assert.Equal(t, "invalid argument: index out of bounds: 5 (size 2)",
		core.NewInvalidArgument("index out of bounds: %d (size %d)", 5, 2).Error())
}

func TestErrors_MatchSentinels(t *testing.T) {
	assert.ErrorIs(t, core.NewEmptyCollection("x"), core.ErrEmptyCollection)
	assert.ErrorIs(t, core.NewElementNotFound("x"), core.ErrElementNotFound)
	assert.ErrorIs(t, core.NewInvalidArgument("x"), core.ErrInvalidArgument)

	assert.NotErrorIs(t, core.NewEmptyCollection("x"), core.ErrElementNotFound)
}

func TestErrors_As(t *testing.T) {
	wrapped := fmt.Errorf("step 3: %w", core.NewElementNotFound("needle"))

	var notFound *core.ElementNotFoundError
	if assert.True(t, errors.As(wrapped, &notFound)) {
		assert.Equal(t, "needle", notFound.Element)
	}

	var empty *core.EmptyCollectionError
	assert.True(t, errors.As(core.NewEmptyCollection("Queue"), &empty))
	assert.Equal(t, "Queue", empty.Collection)
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty", core.NewEmptyCollection("l"), core.KindEmptyCollection},
		{"not found", core.NewElementNotFound(1), core.KindElementNotFound},
		{"invalid", core.NewInvalidArgument("bad"), core.KindInvalidArgument},
		{"wrapped", fmt.Errorf("ctx: %w", core.ErrInvalidArgument), core.KindInvalidArgument},
		{"other", errors.New("boom"), core.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Kind(tt.err))
		})
	}
}
