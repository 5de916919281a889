/*
Package rbtree provides a persistent radix-balanced tree of ordered values.

The tree is an immutable indexed sequence. Every mutating operation
(`Updated`, `Appended`) copies only the nodes on a single root-to-leaf path and
returns a new tree which shares all untouched subtrees with its predecessor.
Both versions stay valid and may be used side by side, from any number of
goroutines, as no node is ever changed after construction.

Nodes carry the minimum of their subtree. This enables range-minimum queries
(`MinSlice`) in O(log n), touching at most two root-to-leaf paths.

Tree shape:
  - every node has 2^B slots, where B is `Config.BranchingBits`,
  - all leaves live at the same depth,
  - the path to an item is the base-2^B representation of its index, most
    significant digit at the root,
  - items always occupy a prefix of the index space.

The tree grows by adding a new root whenever it is full. It never shrinks.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
