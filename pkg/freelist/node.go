// Package freelist implements intrusive free lists whose link fields are
// overlaid on caller supplied memory. The lists never allocate and never touch
// bytes outside the link fields.
//
// Links are kept as raw Addr values rather than Go pointers so the garbage
// collector never traces into the memory they describe. The lists do not own
// that memory and are not safe for concurrent use.
package freelist

import (
	"fmt"
	"unsafe"
)

// Addr is a raw memory address. The zero Addr means "no node".
type Addr uintptr

// Format prints addresses as 0x-prefixed hex for %v and %x. Other verbs
// format the underlying integer.
func (a Addr) Format(f fmt.State, c rune) {
	switch c {
	case 'v', 'x':
		fmt.Fprintf(f, "0x%x", uintptr(a))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, c), uintptr(a))
	}
}

// Node is the link layout of a singly linked list member.
type Node struct {
	next Addr
}

// DoublyNode is the link layout of a doubly linked list member.
type DoublyNode struct {
	next Addr
	prev Addr
}

const (
	NodeSize       = unsafe.Sizeof(Node{})
	DoublyNodeSize = unsafe.Sizeof(DoublyNode{})
	NodeAlign      = unsafe.Alignof(Node{})
)

// FromAddr interprets addr as the location of a Node.
//
// addr must be non-zero, aligned to NodeAlign and point to at least NodeSize
// bytes the caller owns for as long as the node stays linked. None of this is
// checked.
func FromAddr(addr Addr) *Node {
	return (*Node)(unsafe.Pointer(addr))
}

// DoublyFromAddr is FromAddr for DoublyNode, with DoublyNodeSize bytes.
func DoublyFromAddr(addr Addr) *DoublyNode {
	return (*DoublyNode)(unsafe.Pointer(addr))
}

func (n *Node) Addr() Addr {
	return Addr(unsafe.Pointer(n))
}

// IsEmpty reports whether n has no successor. It says nothing about list
// membership.
func (n *Node) IsEmpty() bool {
	return n.next == 0
}

func (n *DoublyNode) Addr() Addr {
	return Addr(unsafe.Pointer(n))
}

func (n *DoublyNode) Next() *DoublyNode {
	return doubly(n.next)
}

func (n *DoublyNode) Prev() *DoublyNode {
	return doubly(n.prev)
}

func single(addr Addr) *Node {
	if addr == 0 {
		return nil
	}
	return FromAddr(addr)
}

func doubly(addr Addr) *DoublyNode {
	if addr == 0 {
		return nil
	}
	return DoublyFromAddr(addr)
}
