package freelist

// DoublyLinked is a free list supporting O(1) push and pop at the head and
// O(n) removal by address. The zero value is an empty list.
type DoublyLinked struct {
	head Addr
}

func (l *DoublyLinked) IsEmpty() bool {
	return l.head == 0
}

// Head returns the first node without unlinking it.
func (l *DoublyLinked) Head() *DoublyNode {
	return doubly(l.head)
}

// Push makes n the new head. n must not be linked into any list.
func (l *DoublyLinked) Push(n *DoublyNode) {
	n.prev = 0
	n.next = l.head
	if head := doubly(l.head); head != nil {
		head.prev = n.Addr()
	}
	l.head = n.Addr()
}

// Pop unlinks and returns the head, or nil when the list is empty. The
// returned node's links are stale.
func (l *DoublyLinked) Pop() *DoublyNode {
	head := doubly(l.head)
	if head == nil {
		return nil
	}

	if next := doubly(head.next); next != nil {
		next.prev = head.prev
	}
	l.head = head.next
	return head
}

// Remove unlinks the node at addr. It returns false, leaving the list
// untouched, when no such node is linked.
func (l *DoublyLinked) Remove(addr Addr) bool {
	n := l.find(addr)
	if n == nil {
		return false
	}

	l.unlink(n)
	return true
}

// Contains reports whether a node at addr is linked, O(n).
func (l *DoublyLinked) Contains(addr Addr) bool {
	return l.find(addr) != nil
}

func (l *DoublyLinked) Len() int {
	count := 0
	l.scan(func(*DoublyNode) bool {
		count++
		return false
	})
	return count
}

func (l *DoublyLinked) find(addr Addr) *DoublyNode {
	var found *DoublyNode
	l.scan(func(n *DoublyNode) bool {
		if n.Addr() == addr {
			found = n
			return true
		}
		return false
	})
	return found
}

func (l *DoublyLinked) unlink(n *DoublyNode) {
	prev, next := doubly(n.prev), doubly(n.next)

	if prev != nil {
		prev.next = n.next
	} else {
		l.head = n.next
	}
	if next != nil {
		next.prev = n.prev
	}
}

func (l *DoublyLinked) scan(scanFn func(n *DoublyNode) bool) {
	for n := doubly(l.head); n != nil; n = doubly(n.next) {
		if scanFn(n) {
			return
		}
	}
}
