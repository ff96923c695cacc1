package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/job"
)

// RenderJobs prints the background job table.
func RenderJobs(w io.Writer, jobs []job.Job, now time.Time) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, InfoColor("No background jobs."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job", "PID", "State", "Elapsed", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, j := range jobs {
		state := j.State.String()
		if j.State == job.Done {
			state = fmt.Sprintf("%s (%s)", state, j.Outcome.String())
		}
		table.Append([]string{
			strconv.Itoa(j.ID),
			strconv.Itoa(j.Pid),
			state,
			now.Sub(j.Started).Truncate(time.Second).String(),
			j.CommandLine,
		})
	}
	table.Render()
}

// JobNotice is the one-line report printed when a background job finishes.
func JobNotice(j job.Job) string {
	status := SuccessColor("Done")
	if !j.Outcome.Success() {
		status = ErrorColor(fmt.Sprintf("Done (%s)", j.Outcome.String()))
	}
	return fmt.Sprintf("[%d] %s %s", j.ID, status, j.CommandLine)
}
