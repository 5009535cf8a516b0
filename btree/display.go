package btree

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Display 先序遍历输出每个节点的key，每个节点一行，格式为
// "Level <depth>: [ k1 k2 ... ]"。空树不输出任何内容
func (tree *Tree) Display(w io.Writer) error {
	if tree.root == nil {
		return nil
	}
	return tree.root.display(w, 0)
}

func (tree *Tree) String() string {
	var b strings.Builder
	_ = tree.Display(&b)
	return b.String()
}

func (n *node) display(w io.Writer, level int) error {
	var b strings.Builder
	b.WriteString("Level ")
	b.WriteString(strconv.Itoa(level))
	b.WriteString(": [ ")
	for _, k := range n.keys {
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(' ')
	}
	b.WriteString("]\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrapf(err, "btree: display level %d", level)
	}

	for _, child := range n.children {
		if err := child.display(w, level+1); err != nil {
			return err
		}
	}
	return nil
}
