package btree

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(ks ...int) *node {
	return &node{leaf: true, keys: ks}
}

func internal(ks []int, cs ...*node) *node {
	return &node{keys: ks, children: cs}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name   string
		root   *node
		length int
		ok     bool
	}{
		{"valid", internal([]int{5}, leaf(1, 2), leaf(7)), 4, true},
		{"empty root", leaf(), 0, false},
		{"unordered leaf", leaf(3, 1), 2, false},
		{"overfull root", leaf(1, 2, 3, 4), 4, false},
		{"underfull child", internal([]int{5}, leaf(1), leaf()), 2, false},
		{"key outside separator", internal([]int{5}, leaf(6), leaf(7)), 3, false},
		{"uneven leaves", internal([]int{5}, leaf(1), internal([]int{8}, leaf(6), leaf(9))), 5, false},
		{"missing child", internal([]int{5, 8}, leaf(1), leaf(6)), 4, false},
		{"wrong length", leaf(1, 2), 3, false},
	}

	for _, c := range cases {
		tree := MustNew(2)
		tree.root = c.root
		tree.length = c.length
		err := tree.Verify()
		if c.ok {
			assert.NoError(t, err, c.name)
			continue
		}
		require.Error(t, err, c.name)
		assert.True(t, errors.IsAssertionFailure(err), c.name)
	}
}

func TestVerifyPanics(t *testing.T) {
	tree := MustNew(2, WithVerify(true))
	tree.Insert(1)
	tree.root.keys = append(tree.root.keys, 0)
	assert.Panics(t, func() { tree.Insert(2) })
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestDisplay(t *testing.T) {
	tree := MustNew(2)
	for i := 1; i <= 7; i++ {
		tree.Insert(i)
	}

	var buf bytes.Buffer
	require.NoError(t, tree.Display(&buf))
	assert.Equal(t, "Level 0: [ 2 4 ]\n"+
		"Level 1: [ 1 ]\n"+
		"Level 1: [ 3 ]\n"+
		"Level 1: [ 5 6 7 ]\n", buf.String())

	err := tree.Display(failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
