// ABOUTME: Sequential ETL pipeline: extract, transform, load, reset input.
// ABOUTME: No retries and no global transaction; first failure aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/harperreed/gymsheet/internal/gsheets"
	"github.com/harperreed/gymsheet/internal/models"
	"github.com/harperreed/gymsheet/internal/transform"
)

// Source provides read access to the three input worksheets plus the
// post-load reset operations on them.
type Source interface {
	Extract(ctx context.Context) (*gsheets.Extract, error)
	ClearInput(ctx context.Context) (int, error)
	ResetSession(ctx context.Context) error
}

// Store is the write surface of the local database the pipeline needs.
type Store interface {
	ReplaceExercises(exercises []models.Exercise) error
	AppendRawSets(sets []models.WorkoutSet) error
	ReplaceCleanDay(workoutDate string, sets []models.WorkoutSet) error
}

// Pipeline runs the stages in dependency order. Single-threaded and
// blocking throughout; meant to be invoked once per gym session.
type Pipeline struct {
	src   Source
	store Store
	out   io.Writer
}

// New wires a pipeline. Progress and warnings are written to out.
func New(src Source, store Store, out io.Writer) *Pipeline {
	return &Pipeline{src: src, store: store, out: out}
}

// Run executes one ETL pass. The input worksheets are only cleared
// after every store write succeeded, so a failed load leaves the
// spreadsheet untouched for a retry.
func (p *Pipeline) Run(ctx context.Context) error {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(p.out, "Extracting data from spreadsheet...")
	ext, err := p.src.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	green.Fprintf(p.out, "  ✓ %s: %d fields\n", gsheets.SessionSheet, ext.Session.Len())
	green.Fprintf(p.out, "  ✓ %s: %d exercises\n", gsheets.ExercisesSheet, ext.Exercises.Len())
	green.Fprintf(p.out, "  ✓ %s: %d sets logged\n", gsheets.InputSheet, ext.Input.Len())

	fmt.Fprintln(p.out, "Transforming data...")
	batch, err := transform.Transform(ext, uuid.New(), time.Now())
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	for _, w := range batch.Warnings {
		yellow.Fprintf(p.out, "  ⚠ %s\n", w)
	}
	green.Fprintf(p.out, "  ✓ workout date: %s\n", batch.Session.WorkoutDate)
	green.Fprintf(p.out, "  ✓ %d valid sets (batch %s)\n", len(batch.Sets), batch.BatchID)

	fmt.Fprintln(p.out, "Loading to database...")
	if err := p.store.ReplaceExercises(batch.Exercises); err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	green.Fprintf(p.out, "  ✓ %d exercises in reference table\n", len(batch.Exercises))

	if len(batch.Sets) == 0 {
		yellow.Fprintln(p.out, "  ⚠ no sets logged; nothing to load")
		return nil
	}

	if err := p.store.AppendRawSets(batch.Sets); err != nil {
		return fmt.Errorf("load raw sets: %w", err)
	}
	green.Fprintf(p.out, "  ✓ appended %d sets to raw log\n", len(batch.Sets))

	if err := p.store.ReplaceCleanDay(batch.Session.WorkoutDate, batch.Sets); err != nil {
		return fmt.Errorf("load clean sets: %w", err)
	}
	green.Fprintf(p.out, "  ✓ replaced clean sets for %s\n", batch.Session.WorkoutDate)

	fmt.Fprintln(p.out, "Clearing input for next workout...")
	cleared, err := p.src.ClearInput(ctx)
	if err != nil {
		return fmt.Errorf("clear input: %w", err)
	}
	if cleared > 0 {
		green.Fprintf(p.out, "  ✓ cleared %d rows from %s\n", cleared, gsheets.InputSheet)
	} else {
		green.Fprintf(p.out, "  ✓ %s already empty\n", gsheets.InputSheet)
	}

	if err := p.src.ResetSession(ctx); err != nil {
		return fmt.Errorf("reset session info: %w", err)
	}
	green.Fprintf(p.out, "  ✓ reset %s values\n", gsheets.SessionSheet)

	return nil
}
