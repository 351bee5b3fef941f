package containers

import (
	list "github.com/bahlo/generic-list-go"
)

// List is a doubly linked list delivering front to back. The zero value is
// empty and ready to use.
type List[E any] struct {
	l *list.List[E]
}

func (me *List[E]) init() {
	if me.l == nil {
		me.l = list.New[E]()
	}
}

func (me *List[E]) PushBack(e E) {
	me.init()
	me.l.PushBack(e)
}

func (me *List[E]) PushFront(e E) {
	me.init()
	me.l.PushFront(e)
}

func (me *List[E]) Len() int {
	if me.l == nil {
		return 0
	}
	return me.l.Len()
}

// Removes the first element, if there is one.
func (me *List[E]) PopFront() (e E, ok bool) {
	if me.l == nil {
		return
	}
	front := me.l.Front()
	if front == nil {
		return
	}
	return me.l.Remove(front), true
}

func (me *List[E]) Each(f func(E) error) error {
	if me.l == nil {
		return nil
	}
	for e := me.l.Front(); e != nil; e = e.Next() {
		if err := f(e.Value); err != nil {
			return err
		}
	}
	return nil
}
