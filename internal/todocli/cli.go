package todocli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CLI is the console menu over a Service. Input and output are injected so
// tests can drive the loop with scripted stdin.
type CLI struct {
	svc *Service
	in  *bufio.Scanner
	out io.Writer
}

// NewCLI returns a CLI reading from in and writing to out.
func NewCLI(svc *Service, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run executes the menu loop until the user exits or input ends.
func (c *CLI) Run() {
	for {
		c.printMenu()
		choice, ok := c.prompt("Enter choice: ")
		if !ok {
			return
		}
		if !c.handle(strings.TrimSpace(choice)) {
			return
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "\n=== Todo Menu ===")
	fmt.Fprintln(c.out, "1. Add Task")
	fmt.Fprintln(c.out, "2. View Tasks")
	fmt.Fprintln(c.out, "3. Update Task")
	fmt.Fprintln(c.out, "4. Delete Task")
	fmt.Fprintln(c.out, "5. Mark Complete")
	fmt.Fprintln(c.out, "6. Mark Incomplete")
	fmt.Fprintln(c.out, "7. Exit")
}

func (c *CLI) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// handle routes a menu choice; returns false when the loop should stop.
func (c *CLI) handle(choice string) bool {
	switch choice {
	case "1":
		c.addTask()
	case "2":
		c.viewTasks()
	case "3":
		c.updateTask()
	case "4":
		c.deleteTask()
	case "5":
		c.markComplete(true)
	case "6":
		c.markComplete(false)
	case "7":
		fmt.Fprintln(c.out, "Goodbye!")
		return false
	default:
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
	return true
}

func (c *CLI) promptTaskID(msg string) (int, bool) {
	s, ok := c.prompt(msg)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		fmt.Fprintln(c.out, "Error: Invalid task ID. Please enter a number.")
		return 0, false
	}
	if id < 1 {
		fmt.Fprintln(c.out, "Error: Task ID must be a positive integer.")
		return 0, false
	}
	return id, true
}

func (c *CLI) addTask() {
	desc, ok := c.prompt("Enter task description: ")
	if !ok {
		return
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		fmt.Fprintln(c.out, "Error: Task description cannot be empty.")
		return
	}
	t := c.svc.Add(desc)
	fmt.Fprintf(c.out, "Task added: [%d] %s\n", t.ID, t.Description)
}

func (c *CLI) viewTasks() {
	tasks := c.svc.All()
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks yet. Add one!")
		return
	}
	fmt.Fprintln(c.out, "\nTasks:")
	for _, t := range tasks {
		status := "[ ]"
		if t.IsComplete {
			status = "[X]"
		}
		fmt.Fprintf(c.out, "%s [%d] %s\n", status, t.ID, t.Description)
	}
}

func (c *CLI) updateTask() {
	id, ok := c.promptTaskID("Enter task ID to update: ")
	if !ok {
		return
	}
	desc, ok := c.prompt("Enter new description: ")
	if !ok {
		return
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		fmt.Fprintln(c.out, "Error: Task description cannot be empty.")
		return
	}
	if c.svc.Update(id, desc) {
		fmt.Fprintf(c.out, "Task %d updated.\n", id)
	} else {
		fmt.Fprintf(c.out, "Error: Task %d not found.\n", id)
	}
}

func (c *CLI) deleteTask() {
	id, ok := c.promptTaskID("Enter task ID to delete: ")
	if !ok {
		return
	}
	if c.svc.Delete(id) {
		fmt.Fprintf(c.out, "Task %d deleted.\n", id)
	} else {
		fmt.Fprintf(c.out, "Error: Task %d not found.\n", id)
	}
}

func (c *CLI) markComplete(complete bool) {
	msg := "Enter task ID to mark complete: "
	action := "complete"
	if !complete {
		msg = "Enter task ID to mark incomplete: "
		action = "incomplete"
	}
	id, ok := c.promptTaskID(msg)
	if !ok {
		return
	}
	if c.svc.MarkComplete(id, complete) {
		fmt.Fprintf(c.out, "Task %d marked as %s.\n", id, action)
	} else {
		fmt.Fprintf(c.out, "Error: Task %d not found.\n", id)
	}
}
