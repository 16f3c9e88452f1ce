package todocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI feeds scripted lines to the menu loop and returns everything printed.
func runCLI(t *testing.T, svc *Service, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	NewCLI(svc, in, &out).Run()
	return out.String()
}

func TestCLI_AddAndView(t *testing.T) {
	svc := NewService()
	out := runCLI(t, svc,
		"1", "buy milk",
		"2",
		"7",
	)

	require.Contains(t, out, "Task added: [1] buy milk")
	require.Contains(t, out, "[ ] [1] buy milk")
	require.Contains(t, out, "Goodbye!")
}

func TestCLI_ViewEmpty(t *testing.T) {
	out := runCLI(t, NewService(), "2", "7")
	require.Contains(t, out, "No tasks yet. Add one!")
}

func TestCLI_AddEmptyDescription(t *testing.T) {
	svc := NewService()
	out := runCLI(t, svc, "1", "   ", "7")
	require.Contains(t, out, "Error: Task description cannot be empty.")
	require.Empty(t, svc.All())
}

func TestCLI_MarkCompleteAndIncomplete(t *testing.T) {
	svc := NewService()
	out := runCLI(t, svc,
		"1", "task",
		"5", "1",
		"2",
		"6", "1",
		"2",
		"7",
	)

	require.Contains(t, out, "Task 1 marked as complete.")
	require.Contains(t, out, "[X] [1] task")
	require.Contains(t, out, "Task 1 marked as incomplete.")
	require.Contains(t, out, "[ ] [1] task")
}

func TestCLI_UpdateAndDelete(t *testing.T) {
	svc := NewService()
	out := runCLI(t, svc,
		"1", "old",
		"3", "1", "new",
		"4", "1",
		"7",
	)

	require.Contains(t, out, "Task 1 updated.")
	require.Contains(t, out, "Task 1 deleted.")
	require.Empty(t, svc.All())
}

func TestCLI_InvalidInput(t *testing.T) {
	out := runCLI(t, NewService(),
		"9",
		"4", "abc",
		"4", "0",
		"4", "5",
		"7",
	)

	require.Contains(t, out, "Invalid choice. Please try again.")
	require.Contains(t, out, "Error: Invalid task ID. Please enter a number.")
	require.Contains(t, out, "Error: Task ID must be a positive integer.")
	require.Contains(t, out, "Error: Task 5 not found.")
}

func TestCLI_StopsWhenInputEnds(t *testing.T) {
	// No "7" at the end: the loop must still terminate on EOF.
	out := runCLI(t, NewService(), "2")
	require.Contains(t, out, "No tasks yet. Add one!")
}
