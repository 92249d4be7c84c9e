package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"coursedeck/internal/course"
)

type deleteCall struct {
	ID    string
	Token string
}

// fakeService records every outbound call the view makes.
type fakeService struct {
	mu        sync.Mutex
	courses   []course.Course
	listErr   error
	deleteErr error
	listCalls int
	deletes   []deleteCall
}

func (f *fakeService) List(ctx context.Context) ([]course.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]course.Course(nil), f.courses...), nil
}

func (f *fakeService) Delete(ctx context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, deleteCall{ID: id, Token: token})
	return f.deleteErr
}

func (f *fakeService) calls() (lists int, deletes []deleteCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, append([]deleteCall(nil), f.deletes...)
}

func testCourses() []course.Course {
	return []course.Course{
		{ID: "c1", Title: "Intro to Testing", Description: "Write your first tests", Instructor: course.Instructor{Username: "ada"}},
		{ID: "c2", Title: "Advanced Go", Description: "Interfaces and concurrency", Instructor: course.Instructor{Username: "rob"}},
		{ID: "c3", Title: "Databases 101", Description: "Tables, rows, indexes", Instructor: course.Instructor{Username: "edgar"}},
	}
}

// runCmd executes cmd and flattens batches into the resulting messages.
// Only use it on commands that return immediately (no tea.Tick).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed sends msg to v and returns the messages its command produced.
func feed(v View, msg tea.Msg) []tea.Msg {
	_, cmd := v.Update(msg)
	return runCmd(cmd)
}

func notifications(msgs []tea.Msg) []NotifyMsg {
	var out []NotifyMsg
	for _, m := range msgs {
		if n, ok := m.(NotifyMsg); ok {
			out = append(out, n)
		}
	}
	return out
}

func firstOf[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
