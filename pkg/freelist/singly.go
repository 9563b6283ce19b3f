package freelist

// SinglyLinked is a LIFO free list. The zero value is an empty list.
type SinglyLinked struct {
	head Addr
}

func (l *SinglyLinked) IsEmpty() bool {
	return l.head == 0
}

// Push makes n the new head. n must not be linked into any list.
func (l *SinglyLinked) Push(n *Node) {
	n.next = l.head
	l.head = n.Addr()
}

// Pop unlinks and returns the most recently pushed node, or nil when the list
// is empty. The returned node's link field is stale.
func (l *SinglyLinked) Pop() *Node {
	head := single(l.head)
	if head == nil {
		return nil
	}

	l.head = head.next
	return head
}

// Len walks the chain, O(n).
func (l *SinglyLinked) Len() int {
	count := 0
	for n := single(l.head); n != nil; n = single(n.next) {
		count++
	}
	return count
}
