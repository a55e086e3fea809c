package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

type assignmentFixture struct {
	svc         *AssignmentService
	assignments *stubAssignmentRepo
	users       *stubUserRepo
	subjects    *stubSubjectRepo
	classes     *stubClassRepo
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		assignments: newStubAssignmentRepo(),
		users:       newStubUserRepo(),
		subjects:    newStubSubjectRepo(),
		classes:     newStubClassRepo(),
	}
	f.svc = NewAssignmentService(f.assignments, f.users, f.subjects, f.classes, discardLogger)
	return f
}

func dueDate(day int) time.Time {
	return time.Date(2025, time.March, day, 18, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestAssignmentService_Create_ResolvesReferences(t *testing.T) {
	f := newAssignmentFixture()
	student := f.users.add(&domain.User{Role: domain.RoleStudent, FirstName: "Awa", LastName: "Diallo"})
	subject := f.subjects.add(&domain.Subject{Name: "Physique"})
	class := f.classes.add(&domain.Class{Name: "L3-A"})

	view, err := f.svc.Create(context.Background(), ports.AssignmentCreateInput{
		Name:      "TP 4",
		DueDate:   dueDate(10),
		AuthorID:  student.ID,
		SubjectID: subject.ID,
		ClassID:   class.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.AuthorID == nil || *view.AuthorID != student.ID {
		t.Errorf("auteurId not set: %v", view.AuthorID)
	}
	if view.AuthorName == nil || *view.AuthorName != "Awa Diallo" {
		t.Errorf("auteurName wrong: %v", view.AuthorName)
	}
	if view.SubjectName == nil || *view.SubjectName != "Physique" {
		t.Errorf("matiereName wrong: %v", view.SubjectName)
	}
	if view.ClassName == nil || *view.ClassName != "L3-A" {
		t.Errorf("className wrong: %v", view.ClassName)
	}
	if view.CreatedAt.IsZero() || view.UpdatedAt.IsZero() {
		t.Error("timestamps must be set on create")
	}
}

func TestAssignmentService_Create_UnresolvableReferenceDoesNotFail(t *testing.T) {
	f := newAssignmentFixture()

	view, err := f.svc.Create(context.Background(), ports.AssignmentCreateInput{
		Name:      "Devoir 1",
		DueDate:   dueDate(1),
		AuthorID:  "missing-user",
		SubjectID: "missing-subject",
		ClassID:   "missing-class",
	})
	if err != nil {
		t.Fatalf("creation must tolerate unresolvable references: %v", err)
	}

	if view.AuthorID != nil || view.SubjectID != nil || view.ClassID != nil {
		t.Errorf("expected all references unset, got %+v", view)
	}
}

// ---------------------------------------------------------------------------
// Update reference matrix
// ---------------------------------------------------------------------------

func TestAssignmentService_Update_EmptySubjectIDClears(t *testing.T) {
	f := newAssignmentFixture()
	subject := f.subjects.add(&domain.Subject{Name: "Chimie"})
	a := f.assignments.add(&domain.Assignment{Name: "Devoir", DueDate: dueDate(5), SubjectID: subject.ID})

	empty := ""
	view, err := f.svc.Update(context.Background(), a.ID, ports.AssignmentUpdateInput{
		Name:      "Devoir",
		DueDate:   dueDate(5),
		SubjectID: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.SubjectID != nil {
		t.Errorf("expected matiere cleared, got %v", *view.SubjectID)
	}

	stored, _ := f.assignments.FindByID(context.Background(), a.ID)
	if stored.SubjectID != "" {
		t.Errorf("stored matiere not cleared: %q", stored.SubjectID)
	}
}

func TestAssignmentService_Update_OmittedSubjectIDUnchanged(t *testing.T) {
	f := newAssignmentFixture()
	subject := f.subjects.add(&domain.Subject{Name: "Chimie"})
	a := f.assignments.add(&domain.Assignment{Name: "Devoir", DueDate: dueDate(5), SubjectID: subject.ID})

	view, err := f.svc.Update(context.Background(), a.ID, ports.AssignmentUpdateInput{
		Name:    "Devoir bis",
		DueDate: dueDate(6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.SubjectID == nil || *view.SubjectID != subject.ID {
		t.Errorf("expected matiere unchanged, got %v", view.SubjectID)
	}
}

func TestAssignmentService_Update_UnresolvableSubjectIDKeepsStale(t *testing.T) {
	f := newAssignmentFixture()
	subject := f.subjects.add(&domain.Subject{Name: "Chimie"})
	a := f.assignments.add(&domain.Assignment{Name: "Devoir", DueDate: dueDate(5), SubjectID: subject.ID})

	bad := "no-such-subject"
	view, err := f.svc.Update(context.Background(), a.ID, ports.AssignmentUpdateInput{
		Name:      "Devoir",
		DueDate:   dueDate(5),
		SubjectID: &bad,
	})
	if err != nil {
		t.Fatalf("resolution failure must not surface: %v", err)
	}
	if view.SubjectID == nil || *view.SubjectID != subject.ID {
		t.Errorf("expected stale matiere preserved, got %v", view.SubjectID)
	}
}

func TestAssignmentService_Update_OverwritesScalars(t *testing.T) {
	f := newAssignmentFixture()
	grade := 12.5
	a := f.assignments.add(&domain.Assignment{
		Name: "Old", DueDate: dueDate(5), Submitted: true, Grade: &grade, Remarks: "ok",
	})

	view, err := f.svc.Update(context.Background(), a.ID, ports.AssignmentUpdateInput{
		Name:    "New",
		DueDate: dueDate(9),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Name != "New" || !view.DueDate.Equal(dueDate(9)) {
		t.Errorf("scalars not overwritten: %+v", view)
	}
	if view.Submitted {
		t.Error("rendu must be overwritten by the payload value")
	}
	if view.Grade != nil {
		t.Error("note must be overwritten by the payload value")
	}
}

func TestAssignmentService_Update_NotFound(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.svc.Update(context.Background(), "ghost", ports.AssignmentUpdateInput{Name: "x", DueDate: dueDate(1)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestAssignmentService_Submit_Success(t *testing.T) {
	f := newAssignmentFixture()
	class := f.classes.add(&domain.Class{Name: "L3-A"})
	student := f.users.add(&domain.User{Role: domain.RoleStudent, ClassID: class.ID})
	a := f.assignments.add(&domain.Assignment{
		Name: "TP", DueDate: dueDate(3), ClassID: class.ID, Attachments: []string{"old.pdf"},
	})

	view, err := f.svc.Submit(context.Background(), a.ID, ports.SubmitInput{
		StudentID:   student.ID,
		Attachments: []string{"a.pdf", "b.pdf"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !view.Submitted {
		t.Error("expected rendu=true after submit")
	}
	if len(view.Attachments) != 2 || view.Attachments[0] != "a.pdf" || view.Attachments[1] != "b.pdf" {
		t.Errorf("attachments must be replaced wholesale, got %v", view.Attachments)
	}
}

func TestAssignmentService_Submit_ClassMismatch(t *testing.T) {
	f := newAssignmentFixture()
	classA := f.classes.add(&domain.Class{Name: "A"})
	classB := f.classes.add(&domain.Class{Name: "B"})
	student := f.users.add(&domain.User{Role: domain.RoleStudent, ClassID: classB.ID})
	a := f.assignments.add(&domain.Assignment{Name: "TP", DueDate: dueDate(3), ClassID: classA.ID})

	_, err := f.svc.Submit(context.Background(), a.ID, ports.SubmitInput{StudentID: student.ID})
	if !errors.Is(err, domain.ErrSubmissionNotAllowed) {
		t.Fatalf("expected submission rejection, got %v", err)
	}

	stored, _ := f.assignments.FindByID(context.Background(), a.ID)
	if stored.Submitted {
		t.Error("assignment must be unchanged after a rejected submission")
	}
}

func TestAssignmentService_Submit_NullClassesRejected(t *testing.T) {
	f := newAssignmentFixture()
	student := f.users.add(&domain.User{Role: domain.RoleStudent}) // no class
	a := f.assignments.add(&domain.Assignment{Name: "TP", DueDate: dueDate(3)}) // no class

	_, err := f.svc.Submit(context.Background(), a.ID, ports.SubmitInput{StudentID: student.ID})
	if !errors.Is(err, domain.ErrSubmissionNotAllowed) {
		t.Fatalf("expected rejection when both classes are null, got %v", err)
	}
}

func TestAssignmentService_Submit_StudentNotFound(t *testing.T) {
	f := newAssignmentFixture()
	a := f.assignments.add(&domain.Assignment{Name: "TP", DueDate: dueDate(3)})

	_, err := f.svc.Submit(context.Background(), a.ID, ports.SubmitInput{StudentID: "ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Grade
// ---------------------------------------------------------------------------

func TestAssignmentService_Grade_UnsubmittedAllowed(t *testing.T) {
	f := newAssignmentFixture()
	a := f.assignments.add(&domain.Assignment{Name: "TP", DueDate: dueDate(3), Submitted: false})

	view, err := f.svc.Grade(context.Background(), a.ID, ports.GradeInput{Grade: 14, Remarks: "bien"})
	if err != nil {
		t.Fatalf("grading an unsubmitted assignment is permitted: %v", err)
	}
	if view.Grade == nil || *view.Grade != 14 {
		t.Errorf("note not applied: %v", view.Grade)
	}
	if view.Remarks != "bien" {
		t.Errorf("remarques not applied: %q", view.Remarks)
	}
	if view.Submitted {
		t.Error("grading must not flip rendu")
	}
}

func TestAssignmentService_Grade_NotFound(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.svc.Grade(context.Background(), "ghost", ports.GradeInput{Grade: 10})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestAssignmentService_Delete(t *testing.T) {
	f := newAssignmentFixture()
	a := f.assignments.add(&domain.Assignment{Name: "TP", DueDate: dueDate(3)})

	if err := f.svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.assignments.FindByID(context.Background(), a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Error("assignment still present after delete")
	}

	if err := f.svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listings and pagination
// ---------------------------------------------------------------------------

func TestAssignmentService_List_PaginationEnvelope(t *testing.T) {
	f := newAssignmentFixture()
	// 25 assignments with strictly decreasing due dates so the default
	// descending sort keeps insertion order.
	for i := 0; i < 25; i++ {
		f.assignments.add(&domain.Assignment{
			Name:    fmt.Sprintf("Devoir %02d", i+1),
			DueDate: dueDate(28 - i),
		})
	}

	page, err := f.svc.List(context.Background(), ports.PageRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Docs) != 10 {
		t.Fatalf("expected 10 docs, got %d", len(page.Docs))
	}
	if page.Docs[0].Name != "Devoir 11" || page.Docs[9].Name != "Devoir 20" {
		t.Errorf("expected records 11-20, got %s .. %s", page.Docs[0].Name, page.Docs[9].Name)
	}
	if page.TotalDocs != 25 || page.TotalPages != 3 {
		t.Errorf("expected totalDocs=25 totalPages=3, got %d/%d", page.TotalDocs, page.TotalPages)
	}
	if page.PagingCounter != 11 {
		t.Errorf("expected pagingCounter=11, got %d", page.PagingCounter)
	}
	if !page.HasPrevPage || !page.HasNextPage {
		t.Error("expected hasPrevPage and hasNextPage on the middle page")
	}
	if page.PrevPage == nil || *page.PrevPage != 1 {
		t.Errorf("expected prevPage=1, got %v", page.PrevPage)
	}
	if page.NextPage == nil || *page.NextPage != 3 {
		t.Errorf("expected nextPage=3, got %v", page.NextPage)
	}
}

func TestAssignmentService_SubmittedAndPending_SortDirections(t *testing.T) {
	f := newAssignmentFixture()
	f.assignments.add(&domain.Assignment{Name: "early-pending", DueDate: dueDate(1), Submitted: false})
	f.assignments.add(&domain.Assignment{Name: "done", DueDate: dueDate(2), Submitted: true})
	f.assignments.add(&domain.Assignment{Name: "late-pending", DueDate: dueDate(3), Submitted: false})
	f.assignments.add(&domain.Assignment{Name: "done-late", DueDate: dueDate(4), Submitted: true})

	pending, err := f.svc.ListPending(context.Background(), ports.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending.Docs) != 2 || pending.Docs[0].Name != "early-pending" || pending.Docs[1].Name != "late-pending" {
		t.Errorf("pending must be due-date ascending, got %v", names(pending.Docs))
	}

	submitted, err := f.svc.ListSubmitted(context.Background(), ports.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(submitted.Docs) != 2 || submitted.Docs[0].Name != "done-late" || submitted.Docs[1].Name != "done" {
		t.Errorf("submitted must be due-date descending, got %v", names(submitted.Docs))
	}
}

func TestAssignmentService_ListByTeacher_IndirectThroughSubjects(t *testing.T) {
	f := newAssignmentFixture()
	subjA := f.subjects.add(&domain.Subject{Name: "A"})
	subjB := f.subjects.add(&domain.Subject{Name: "B"})
	subjC := f.subjects.add(&domain.Subject{Name: "C"})
	teacher := f.users.add(&domain.User{
		Role:               domain.RoleTeacher,
		TeachingSubjectIDs: []string{subjA.ID, subjB.ID},
	})
	student := f.users.add(&domain.User{Role: domain.RoleStudent})

	f.assignments.add(&domain.Assignment{Name: "in-A", DueDate: dueDate(1), SubjectID: subjA.ID})
	f.assignments.add(&domain.Assignment{Name: "in-C", DueDate: dueDate(2), SubjectID: subjC.ID, AuthorID: student.ID})
	f.assignments.add(&domain.Assignment{Name: "in-B", DueDate: dueDate(3), SubjectID: subjB.ID})

	page, err := f.svc.ListByTeacher(context.Background(), teacher.ID, ports.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalDocs != 2 {
		t.Fatalf("expected 2 assignments, got %d", page.TotalDocs)
	}
	for _, d := range page.Docs {
		if d.Name == "in-C" {
			t.Error("assignment outside the teacher's subjects must be excluded")
		}
	}
}

func TestAssignmentService_ListByTeacher_NoSubjectsReturnsEmpty(t *testing.T) {
	f := newAssignmentFixture()
	teacher := f.users.add(&domain.User{Role: domain.RoleTeacher})
	f.assignments.add(&domain.Assignment{Name: "x", DueDate: dueDate(1)})

	page, err := f.svc.ListByTeacher(context.Background(), teacher.ID, ports.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalDocs != 0 || len(page.Docs) != 0 {
		t.Errorf("expected empty page, got %d docs", len(page.Docs))
	}
}

func TestAssignmentService_ListByClass(t *testing.T) {
	f := newAssignmentFixture()
	class := f.classes.add(&domain.Class{Name: "L3-A"})
	f.assignments.add(&domain.Assignment{Name: "mine", DueDate: dueDate(1), ClassID: class.ID})
	f.assignments.add(&domain.Assignment{Name: "other", DueDate: dueDate(2), ClassID: "elsewhere"})

	page, err := f.svc.ListByClass(context.Background(), class.ID, ports.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalDocs != 1 || page.Docs[0].Name != "mine" {
		t.Errorf("expected only class assignments, got %v", names(page.Docs))
	}
}

func names(docs []ports.AssignmentView) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out
}
