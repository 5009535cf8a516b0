package btree

import "github.com/sirupsen/logrus"

// Option 创建Tree时的可选配置
type Option func(*Tree)

// WithLogger 替换默认的Log，nil时忽略
func WithLogger(l logrus.FieldLogger) Option {
	return func(tree *Tree) {
		if l != nil {
			tree.log = l
		}
	}
}

// WithVerify 每次插入后校验整棵树，校验失败直接panic，只用于调试
func WithVerify(on bool) Option {
	return func(tree *Tree) {
		tree.verify = on
	}
}
