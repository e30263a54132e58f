package aoc

import (
	"slices"
	"testing"
)

func TestPriorityQueues(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	tests := []struct {
		name string
		q    *PQ[string]
		want []int
	}{
		{"min", MinQueue[string](), []int{1, 2, 3, 4, 5}},
		{"max", MaxQueue[string](), []int{5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		for _, p := range in {
			tt.q.PushValue("v", p)
		}
		var got []int
		for tt.q.Len() > 0 {
			got = append(got, tt.q.Pop().P)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: popped %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPQUpdate(t *testing.T) {
	q := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 10}
	q.Push(a)
	b := q.PushValue("b", 5)
	if a.Index() < 0 || b.Index() < 0 {
		t.Fatalf("queued items have Index %d, %d", a.Index(), b.Index())
	}
	a.P = 1
	q.Update(a)
	if got := q.Pop(); got != a {
		t.Errorf("Pop after Update = %v, want a", got)
	}
	if a.Index() != -1 {
		t.Errorf("popped item has Index %d, want -1", a.Index())
	}
	b.P = 0
	q.Update(b)
	if got := q.Pop(); got != b || q.Len() != 0 {
		t.Errorf("Pop = %v, Len = %d", got, q.Len())
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return true
	})
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Queue order = %v", got)
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop on empty queue ok")
	}
}

func TestStack(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{2, 1}) {
		t.Errorf("Stack order = %v", got)
	}
}
