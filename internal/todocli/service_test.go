package todocli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestService_AddAssignsSequentialIDs(t *testing.T) {
	svc := NewService()

	first := svc.Add("first task")
	second := svc.Add("second task")

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
	require.Equal(t, "first task", first.Description)
	require.False(t, first.IsComplete)
}

func TestService_AddTrimsDescription(t *testing.T) {
	svc := NewService()
	task := svc.Add("  padded  ")
	require.Equal(t, "padded", task.Description)
}

func TestService_AllReturnsCopyInInsertionOrder(t *testing.T) {
	svc := NewService()
	svc.Add("a")
	svc.Add("b")

	tasks := svc.All()
	require.Len(t, tasks, 2)
	require.Equal(t, "a", tasks[0].Description)
	require.Equal(t, "b", tasks[1].Description)

	// Mutating the returned slice must not touch storage.
	tasks[0].Description = "mutated"
	again := svc.All()
	require.Equal(t, "a", again[0].Description)
}

func TestService_Update(t *testing.T) {
	svc := NewService()
	task := svc.Add("old")

	require.True(t, svc.Update(task.ID, "new"))
	got, ok := svc.Get(task.ID)
	require.True(t, ok)
	require.Equal(t, "new", got.Description)

	require.False(t, svc.Update(999, "nope"))
}

func TestService_Delete(t *testing.T) {
	svc := NewService()
	task := svc.Add("doomed")

	require.True(t, svc.Delete(task.ID))
	_, ok := svc.Get(task.ID)
	require.False(t, ok)

	require.False(t, svc.Delete(task.ID))
}

func TestService_DeleteDoesNotReuseIDs(t *testing.T) {
	svc := NewService()
	first := svc.Add("first")
	require.True(t, svc.Delete(first.ID))

	second := svc.Add("second")
	require.Equal(t, 2, second.ID)
}

func TestService_MarkComplete(t *testing.T) {
	svc := NewService()
	task := svc.Add("work")

	require.True(t, svc.MarkComplete(task.ID, true))
	got, _ := svc.Get(task.ID)
	require.True(t, got.IsComplete)

	require.True(t, svc.MarkComplete(task.ID, false))
	got, _ = svc.Get(task.ID)
	require.False(t, got.IsComplete)

	require.False(t, svc.MarkComplete(999, true))
}
