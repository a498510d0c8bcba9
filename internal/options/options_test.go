package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	value int
}

func TestApply_InOrder(t *testing.T) {
	tgt := &target{}

	err := Apply(tgt,
		NoError(func(tg *target) { tg.value = 1 }),
		NoError(func(tg *target) { tg.value *= 10 }),
	)
	require.NoError(t, err)
	require.Equal(t, 10, tgt.value)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	tgt := &target{}

	err := Apply(tgt,
		New(func(tg *target) error { tg.value = 1; return nil }),
		New(func(*target) error { return boom }),
		NoError(func(tg *target) { tg.value = 99 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, tgt.value)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
