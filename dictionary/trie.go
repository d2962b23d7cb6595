package dictionary

// trieNode is a node of the prefix tree, rank is set at word ends
type trieNode struct {
	children map[rune]*trieNode
	rank     int
}

// trie indexes the ranked words by prefix so that all words starting at a
// position are found in a single walk
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// insert adds word with rank, an existing rank is kept
func (t *trie) insert(word string, rank int) {
	node := t.root
	for _, ch := range word {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}
	if node.rank == 0 {
		node.rank = rank
	}
}

// walk calls fn with the length and rank of every word that is a prefix of
// runes, shortest first
func (t *trie) walk(runes []rune, fn func(length, rank int)) {
	node := t.root
	for i, ch := range runes {
		node = node.children[ch]
		if node == nil {
			return
		}
		if node.rank > 0 {
			fn(i+1, node.rank)
		}
	}
}
