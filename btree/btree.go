package btree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Log 默认的日志，WithLogger可以替换
var Log = logrus.New()

// ErrInvalidDegree 度小于2时无法构成合法的btree
var ErrInvalidDegree = errors.New("btree: degree must be at least 2")

// Tree 整数key的有序索引，单线程使用，调用方需自行保证串行访问。
// 重复插入已存在的key不做任何修改。
type Tree struct {
	degree int   // 最小度t
	root   *node // 根节点，空树时为nil
	length int   // key总数

	log    logrus.FieldLogger
	verify bool
}

// New 创建一棵最小度为degree的空树
func New(degree int, opts ...Option) (*Tree, error) {
	if degree < 2 {
		return nil, errors.Wrapf(ErrInvalidDegree, "got %d", degree)
	}
	tree := &Tree{
		degree: degree,
		log:    Log,
	}
	for _, opt := range opts {
		opt(tree)
	}
	return tree, nil
}

// MustNew 同New，度非法时panic
func MustNew(degree int, opts ...Option) *Tree {
	tree, err := New(degree, opts...)
	if err != nil {
		panic(err)
	}
	return tree
}

// Degree 最小度
func (tree *Tree) Degree() int {
	return tree.degree
}

// MinCap 非根节点最少的key个数
func (tree *Tree) MinCap() int {
	return tree.degree - 1
}

// MaxCap 每个节点最多的key个数
func (tree *Tree) MaxCap() int {
	return 2*tree.degree - 1
}

// Len key总数
func (tree *Tree) Len() int {
	return tree.length
}

// Height 层数，空树为0
func (tree *Tree) Height() int {
	h := 0
	for n := tree.root; n != nil; h++ {
		if n.leaf {
			return h + 1
		}
		n = n.children[0]
	}
	return h
}

// Search 判断k是否存在，不修改树
func (tree *Tree) Search(k int) bool {
	for n := tree.root; n != nil; {
		i, found := n.has(k)
		if found {
			return true
		}
		if n.leaf {
			return false
		}
		n = n.children[i]
	}
	return false
}

// Insert 插入k，返回是否新增。k已存在时直接返回false
func (tree *Tree) Insert(k int) bool {
	if tree.Search(k) {
		tree.log.WithField("key", k).Debug("btree: duplicate key ignored")
		return false
	}

	switch {
	case tree.root == nil:
		tree.root = newNode(true)
		tree.root.keys = append(tree.root.keys, k)
	case len(tree.root.keys) == tree.MaxCap():
		// 根节点已满，只有这里会让树长高
		s := newNode(false)
		s.children = append(s.children, tree.root)
		tree.splitChild(s, 0)

		i := 0
		if s.keys[0] < k {
			i++
		}
		tree.insertNonFull(s.children[i], k)
		tree.root = s

		tree.log.WithFields(logrus.Fields{
			"key":       k,
			"separator": s.keys[0],
			"height":    tree.Height(),
		}).Debug("btree: root split")
	default:
		tree.insertNonFull(tree.root, k)
	}
	tree.length++

	if tree.verify {
		if err := tree.Verify(); err != nil {
			panic(err)
		}
	}
	return true
}

// insertNonFull 调用前保证n未满，下沉过程中遇到满的子节点先分裂
func (tree *Tree) insertNonFull(n *node, k int) {
	i := n.keys.search(k)
	if n.leaf {
		n.keys.insertAt(i, k)
		return
	}

	if len(n.children[i].keys) == tree.MaxCap() {
		tree.splitChild(n, i)
		// 上升的key可能比k小，需要往右挪一位
		if n.keys[i] < k {
			i++
		}
	}
	tree.insertNonFull(n.children[i], k)
}

// splitChild 把parent.children[i]分裂成两个各有t-1个key的节点，中间的key上升到parent.keys[i]
func (tree *Tree) splitChild(parent *node, i int) {
	t := tree.degree
	child := parent.children[i]
	mid := child.keys[t-1]

	z := newNode(child.leaf)
	z.keys = append(z.keys, child.keys[t:]...)
	child.keys = child.keys[:t-1]
	if !child.leaf {
		z.children = append(z.children, child.children[t:]...)
		child.children.truncate(t)
	}

	parent.children.insertAt(i+1, z)
	parent.keys.insertAt(i, mid)

	tree.log.WithFields(logrus.Fields{
		"index":     i,
		"separator": mid,
		"leaf":      z.leaf,
	}).Debug("btree: child split")
}

// Ascend 按升序遍历所有key，fn返回false时停止
func (tree *Tree) Ascend(fn func(k int) bool) {
	if tree.root == nil {
		return
	}
	tree.root.ascend(fn)
}

// Keys 升序返回所有key
func (tree *Tree) Keys() []int {
	out := make([]int, 0, tree.length)
	tree.Ascend(func(k int) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Min 最小的key
func (tree *Tree) Min() (int, bool) {
	n := tree.root
	if n == nil {
		return 0, false
	}
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0], true
}

// Max 最大的key
func (tree *Tree) Max() (int, bool) {
	n := tree.root
	if n == nil {
		return 0, false
	}
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}
