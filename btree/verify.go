package btree

import "github.com/cockroachdb/errors"

// Verify 校验树的结构：
// 所有叶子深度相同，key严格递增且落在父节点分隔key的区间内，
// 非根节点key个数在[MinCap, MaxCap]之间，非叶子节点的子节点比key多一个
func (tree *Tree) Verify() error {
	if tree.root == nil {
		if tree.length != 0 {
			return errors.AssertionFailedf("btree: empty root but length %d", tree.length)
		}
		return nil
	}
	if len(tree.root.keys) == 0 {
		return errors.AssertionFailedf("btree: root has no keys")
	}

	v := &verifier{tree: tree, leafDepth: -1}
	if err := v.walk(tree.root, 0, bound{}, bound{}); err != nil {
		return err
	}
	if v.count != tree.length {
		return errors.AssertionFailedf("btree: counted %d keys, length is %d", v.count, tree.length)
	}
	return nil
}

// bound 子树key的开区间边界，set为false表示无界
type bound struct {
	key int
	set bool
}

type verifier struct {
	tree      *Tree
	leafDepth int
	count     int
}

func (v *verifier) walk(n *node, depth int, lo, hi bound) error {
	if depth > 0 && (len(n.keys) < v.tree.MinCap() || len(n.keys) > v.tree.MaxCap()) {
		return errors.AssertionFailedf("btree: node at depth %d has %d keys, want [%d, %d]",
			depth, len(n.keys), v.tree.MinCap(), v.tree.MaxCap())
	}
	if len(n.keys) > v.tree.MaxCap() {
		return errors.AssertionFailedf("btree: root has %d keys, max %d", len(n.keys), v.tree.MaxCap())
	}

	for i, k := range n.keys {
		if i > 0 && n.keys[i-1] >= k {
			return errors.AssertionFailedf("btree: keys out of order at depth %d: %d >= %d", depth, n.keys[i-1], k)
		}
		if (lo.set && k <= lo.key) || (hi.set && k >= hi.key) {
			return errors.AssertionFailedf("btree: key %d at depth %d outside its separators", k, depth)
		}
	}
	v.count += len(n.keys)

	if n.leaf {
		if len(n.children) != 0 {
			return errors.AssertionFailedf("btree: leaf at depth %d has %d children", depth, len(n.children))
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.AssertionFailedf("btree: leaf at depth %d, want %d", depth, v.leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return errors.AssertionFailedf("btree: internal node at depth %d has %d keys and %d children",
			depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = bound{key: n.keys[i-1], set: true}
		}
		if i < len(n.keys) {
			chi = bound{key: n.keys[i], set: true}
		}
		if err := v.walk(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
