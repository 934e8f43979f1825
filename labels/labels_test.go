package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-fast-eiod/labels"
)

func TestUnlabeledIsNotAName(t *testing.T) {
	s := labels.Empty.With(labels.Named(""))
	assert.False(t, s.Contains(labels.Unlabeled))
	assert.True(t, s.Contains(labels.Named("")))

	s = labels.Empty.With(labels.Unlabeled)
	assert.True(t, s.Contains(labels.Unlabeled))
	assert.False(t, s.Contains(labels.Named("")))
}

func TestLabelsCompareByName(t *testing.T) {
	s := labels.Empty.With(labels.Named("foo"))
	assert.True(t, s.Contains(labels.Named("foo")))
	assert.False(t, s.Contains(labels.Named("bar")))
}

func TestWithDoesNotAlias(t *testing.T) {
	base := labels.Of(labels.Named("a"), labels.Named("b"))
	left := base.With(labels.Named("left"))
	right := base.With(labels.Named("right"))

	assert.True(t, left.Contains(labels.Named("left")))
	assert.False(t, left.Contains(labels.Named("right")))
	assert.True(t, right.Contains(labels.Named("right")))
	assert.False(t, right.Contains(labels.Named("left")))
	assert.Equal(t, 2, base.Len())
}

func TestWithout(t *testing.T) {
	base := labels.Of(labels.Unlabeled, labels.Named("a"), labels.Unlabeled)
	s := base.Without(labels.Unlabeled)

	assert.False(t, s.Contains(labels.Unlabeled))
	assert.True(t, s.Contains(labels.Named("a")))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 3, base.Len(), "receiver must be untouched")

	same := labels.Of(labels.Named("a")).Without(labels.Unlabeled)
	assert.Equal(t, []labels.Target{labels.Named("a")}, same.Targets())
}

func TestString(t *testing.T) {
	s := labels.Empty.With(labels.Named("foo")).With(labels.Unlabeled)
	assert.Equal(t, "{foo, <unlabeled>}", s.String())
	assert.Equal(t, "{}", labels.Empty.String())
}
