package btree

import "sort"

// keys 节点内升序排列的key
type keys []int

// search 返回第一个大于k的key的下标，也就是k应该下沉的子节点下标
// k与某个key相等时返回其右侧位置
func (s keys) search(k int) int {
	return sort.Search(len(s), func(i int) bool {
		return k < s[i]
	})
}

// insertAt 在index处插入key，后面的往后挪一位
func (s *keys) insertAt(index int, k int) {
	*s = append(*s, 0)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = k
}

// children 子节点的指针数组
type children []*node

// insertAt 指定位置插入子节点
func (s *children) insertAt(index int, n *node) {
	*s = append(*s, nil)
	copy((*s)[index+1:], (*s)[index:])
	(*s)[index] = n
}

// truncate 截断到前n个子节点，释放后面的指针
func (s *children) truncate(n int) {
	for i := n; i < len(*s); i++ {
		(*s)[i] = nil
	}
	*s = (*s)[:n]
}

// node代表btree的一个节点，叶子节点没有子节点
type node struct {
	leaf     bool
	keys     keys
	children children // 非叶子节点时长度为len(keys)+1
}

func newNode(leaf bool) *node {
	return &node{leaf: leaf}
}

// has 在当前节点内查找k，未找到时返回应当下沉的子节点下标
func (n *node) has(k int) (int, bool) {
	i := n.keys.search(k)
	if i > 0 && n.keys[i-1] == k {
		return i - 1, true
	}
	return i, false
}

// ascend 中序遍历，fn返回false时停止
func (n *node) ascend(fn func(k int) bool) bool {
	for i, k := range n.keys {
		if !n.leaf && !n.children[i].ascend(fn) {
			return false
		}
		if !fn(k) {
			return false
		}
	}
	if !n.leaf {
		return n.children[len(n.keys)].ascend(fn)
	}
	return true
}
