package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedeck/internal/course"
	"coursedeck/internal/route"
	"coursedeck/internal/session"
)

var (
	instructorSession = session.Session{Role: session.RoleInstructor, Token: "tok-1"}
	learnerSession    = session.Session{Role: session.RoleLearner, Token: "tok-2"}
)

// mountedView builds a CourseView and delivers the result of its mount-time fetch.
func mountedView(t *testing.T, svc *fakeService, sess session.Session) *CourseView {
	t.Helper()
	v := NewCourseView(context.Background(), svc, sess, nil)
	msgs := runCmd(v.Init())
	require.True(t, v.Loading())
	loaded, ok := firstOf[CoursesLoadedMsg](msgs)
	require.True(t, ok, "Init should fetch courses")
	v.Update(loaded)
	return v
}

// confirmDelete walks the delete flow for the selected course: d, y, then the delete result.
func confirmDelete(t *testing.T, v *CourseView) []tea.Msg {
	t.Helper()
	require.Empty(t, feed(v, keyMsg("d")))
	require.NotNil(t, v.Confirm(), "d should open the confirmation")

	confirmed, ok := firstOf[ConfirmDeleteMsg](feed(v, keyMsg("y")))
	require.True(t, ok)

	var out []tea.Msg
	for _, result := range feed(v, confirmed) {
		out = append(out, result)
		out = append(out, feed(v, result)...)
	}
	return out
}

func TestCourseView_InitFetchesOnce(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	lists, deletes := svc.calls()
	assert.Equal(t, 1, lists)
	assert.Empty(t, deletes)
	assert.False(t, v.Loading())
	assert.Len(t, v.Courses, 3)
}

func TestCourseView_RendersEveryCourse(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	out := v.View()
	for _, c := range testCourses() {
		assert.Contains(t, out, c.Title)
		assert.Contains(t, out, c.Description)
		assert.Contains(t, out, "Instructor: "+c.InstructorName())
	}
	assert.Equal(t, 3, strings.Count(out, ActionViewDetails.Label()))
}

func TestCourseView_InstructorControls(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)

	assert.Equal(t, []Action{ActionViewDetails, ActionEdit, ActionDelete}, v.Actions())
	assert.True(t, v.CanCreate())

	out := v.View()
	assert.Equal(t, 3, strings.Count(out, ActionEdit.Label()))
	assert.Equal(t, 3, strings.Count(out, ActionDelete.Label()))
	assert.Zero(t, strings.Count(out, ActionEnroll.Label()))
	assert.Contains(t, out, CreateLabel)
}

func TestCourseView_LearnerControls(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	assert.Equal(t, []Action{ActionViewDetails, ActionEnroll}, v.Actions())
	assert.False(t, v.CanCreate())

	out := v.View()
	assert.Equal(t, 3, strings.Count(out, ActionEnroll.Label()))
	assert.Zero(t, strings.Count(out, ActionEdit.Label()))
	assert.Zero(t, strings.Count(out, ActionDelete.Label()))
	assert.NotContains(t, out, CreateLabel)
}

func TestCourseView_UnknownRoleIsLearner(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, session.Session{Role: session.ParseRole("admin"), Token: "x"})

	assert.False(t, v.CanCreate())
	assert.Contains(t, v.Actions(), ActionEnroll)
}

func TestCourseView_DeleteSuccess(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)
	v.Update(keyMsg("j")) // select c2

	msgs := confirmDelete(t, v)

	_, deletes := svc.calls()
	assert.Equal(t, []deleteCall{{ID: "c2", Token: "tok-1"}}, deletes)

	require.Len(t, v.Courses, 2)
	assert.Equal(t, "c1", v.Courses[0].ID)
	assert.Equal(t, "c3", v.Courses[1].ID)
	assert.NotContains(t, v.View(), "Advanced Go")

	notes := notifications(msgs)
	require.Len(t, notes, 1, "success is shown exactly once")
	assert.Equal(t, NotifyMsg{Level: NotifySuccess, Text: MsgDeleted}, notes[0])
	assert.Nil(t, v.Confirm())
}

func TestCourseView_DeleteUnauthorized(t *testing.T) {
	svc := &fakeService{
		courses:   testCourses(),
		deleteErr: &course.StatusError{Op: "delete", Code: 401},
	}
	v := mountedView(t, svc, instructorSession)

	msgs := confirmDelete(t, v)

	assert.Len(t, v.Courses, 3, "item stays after a rejected delete")
	assert.Contains(t, v.View(), "Intro to Testing")

	notes := notifications(msgs)
	require.Len(t, notes, 1)
	assert.Equal(t, NotifyMsg{Level: NotifyError, Text: MsgDeleteDenied}, notes[0])
}

func TestCourseView_DeleteOtherFailure(t *testing.T) {
	svc := &fakeService{courses: testCourses(), deleteErr: errors.New("connection reset")}
	v := mountedView(t, svc, instructorSession)

	msgs := confirmDelete(t, v)

	assert.Len(t, v.Courses, 3)
	notes := notifications(msgs)
	require.Len(t, notes, 1)
	assert.Equal(t, NotifyMsg{Level: NotifyError, Text: MsgDeleteFailed}, notes[0])
}

func TestCourseView_DeleteDeclined(t *testing.T) {
	for _, declineKey := range []string{"n", "esc"} {
		t.Run(declineKey, func(t *testing.T) {
			svc := &fakeService{courses: testCourses()}
			v := mountedView(t, svc, instructorSession)

			feed(v, keyMsg("d"))
			require.NotNil(t, v.Confirm())

			dismiss, ok := firstOf[DismissModalMsg](feed(v, keyMsg(declineKey)))
			require.True(t, ok)
			assert.Empty(t, feed(v, dismiss))

			_, deletes := svc.calls()
			assert.Empty(t, deletes)
			assert.Nil(t, v.Confirm())
			assert.Equal(t, testCourses(), v.Courses)
		})
	}
}

func TestCourseView_DeleteWithoutTokenIsSilent(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, session.Session{Role: session.RoleInstructor})

	feed(v, keyMsg("d"))
	confirmed, ok := firstOf[ConfirmDeleteMsg](feed(v, keyMsg("enter")))
	require.True(t, ok)

	assert.Empty(t, feed(v, confirmed), "no request and no notification")
	_, deletes := svc.calls()
	assert.Empty(t, deletes)
	assert.Len(t, v.Courses, 3)
}

func TestCourseView_ModalSwallowsKeys(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)

	feed(v, keyMsg("d"))
	out := v.View()
	assert.Contains(t, out, DeleteCoursePrompt)
	assert.Contains(t, out, "Course: Intro to Testing")

	assert.Empty(t, feed(v, keyMsg("j")))
	assert.Equal(t, 0, v.Selected, "navigation is blocked while confirming")
}

func TestCourseView_LearnerCannotDeleteOrEdit(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	assert.Empty(t, feed(v, keyMsg("d")))
	assert.Nil(t, v.Confirm())
	assert.Empty(t, feed(v, keyMsg("e")))
	assert.Empty(t, feed(v, keyMsg("c")))
	assert.Nil(t, v.RequestDelete("c1"))
	assert.Nil(t, v.Edit("c1"))
	assert.Nil(t, v.Create())
}

func TestCourseView_Enroll(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	notes := notifications(feed(v, keyMsg("n")))
	require.Len(t, notes, 1)
	assert.Equal(t, NotifySuccess, notes[0].Level)
	assert.Contains(t, notes[0].Text, `"Intro to Testing"`)
	assert.Equal(t, `You have successfully enrolled in "Intro to Testing"!`, notes[0].Text)

	lists, deletes := svc.calls()
	assert.Equal(t, 1, lists, "only the mount-time fetch")
	assert.Empty(t, deletes)
}

func TestCourseView_InstructorCannotEnroll(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)

	assert.Nil(t, v.Enroll(testCourses()[0]))
}

func TestCourseView_Navigation(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)

	nav, ok := firstOf[NavigateMsg](feed(v, keyMsg("enter")))
	require.True(t, ok)
	assert.Equal(t, route.ViewPath("c1"), nav.Path)

	feed(v, keyMsg("G"))
	nav, ok = firstOf[NavigateMsg](feed(v, keyMsg("e")))
	require.True(t, ok)
	assert.Equal(t, "/courses/update/c3", nav.Path)

	nav, ok = firstOf[NavigateMsg](feed(v, keyMsg("c")))
	require.True(t, ok)
	assert.Equal(t, "/courses/create", nav.Path)

	// Navigation changes nothing locally.
	assert.Equal(t, testCourses(), v.Courses)
}

func TestCourseView_CursorMovement(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, learnerSession)

	feed(v, keyMsg("j"))
	feed(v, keyMsg("down"))
	assert.Equal(t, 2, v.Selected)
	feed(v, keyMsg("j"))
	assert.Equal(t, 2, v.Selected, "j at bottom stays")
	feed(v, keyMsg("k"))
	assert.Equal(t, 1, v.Selected)
	feed(v, keyMsg("g"))
	assert.Equal(t, 0, v.Selected)
	feed(v, keyMsg("up"))
	assert.Equal(t, 0, v.Selected)
}

func TestCourseView_SelectionClampedAfterDelete(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)
	feed(v, keyMsg("G"))

	confirmDelete(t, v)
	assert.Len(t, v.Courses, 2)
	assert.Equal(t, 1, v.Selected)
}

func TestCourseView_FetchFailure(t *testing.T) {
	svc := &fakeService{listErr: errors.New("dial tcp: connection refused")}
	v := NewCourseView(context.Background(), svc, learnerSession, nil)

	var notes []NotifyMsg
	for _, msg := range runCmd(v.Init()) {
		notes = append(notes, notifications(feed(v, msg))...)
	}

	assert.False(t, v.Loading())
	assert.Empty(t, v.Courses)
	require.Len(t, notes, 1)
	assert.Equal(t, NotifyMsg{Level: NotifyError, Text: MsgLoadFailed}, notes[0])
	assert.Contains(t, v.View(), "No courses yet.")
}

func TestCourseView_LoadingState(t *testing.T) {
	v := NewCourseView(context.Background(), &fakeService{}, learnerSession, nil)
	v.Init()
	assert.Contains(t, v.View(), "Loading courses")
}

func TestCourseView_KeysWithoutCourses(t *testing.T) {
	svc := &fakeService{}
	v := mountedView(t, svc, instructorSession)

	assert.Empty(t, feed(v, keyMsg("enter")))
	assert.Empty(t, feed(v, keyMsg("d")))
	assert.Nil(t, v.Confirm())
	feed(v, keyMsg("G"))
	assert.Equal(t, 0, v.Selected)

	// Create still works with an empty list.
	_, ok := firstOf[NavigateMsg](feed(v, keyMsg("c")))
	assert.True(t, ok)
}

func TestCourseView_DuplicateDeletesAreNotDeduplicated(t *testing.T) {
	svc := &fakeService{courses: testCourses()}
	v := mountedView(t, svc, instructorSession)

	first := feed(v, ConfirmDeleteMsg{ID: "c1"})
	second := feed(v, ConfirmDeleteMsg{ID: "c1"})
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	_, deletes := svc.calls()
	assert.Len(t, deletes, 2)

	feed(v, first[0])
	feed(v, second[0])
	assert.Len(t, v.Courses, 2)
}

func TestCourseView_HelpFollowsRole(t *testing.T) {
	instr := mountedView(t, &fakeService{courses: testCourses()}, instructorSession)
	assert.Contains(t, instr.View(), "delete")

	learner := mountedView(t, &fakeService{courses: testCourses()}, learnerSession)
	out := learner.View()
	assert.Contains(t, out, "enroll")
	assert.NotContains(t, out, "delete")
}
