package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/creditroll/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, credits *model.Credits) error
	mu        sync.Mutex
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, credits *model.Credits) error {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
	if m.doFunc != nil {
		return m.doFunc(ctx, credits)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func (m *mockStep) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.concurrency != 1 {
			t.Errorf("expected concurrency 1, got %d", p.concurrency)
		}
		if p.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		if p := New(WithConcurrency(4)); p.concurrency != 4 {
			t.Errorf("expected concurrency 4, got %d", p.concurrency)
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		if p := New(WithConcurrency(0)); p.concurrency != 1 {
			t.Errorf("expected concurrency 1, got %d", p.concurrency)
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddStep(&mockStep{name: "first"})
	p.AddSteps(&mockStep{name: "second"}, &mockStep{name: "third"})

	if p.StepCount() != 3 {
		t.Errorf("expected 3 steps, got %d", p.StepCount())
	}
	if diff := cmp.Diff([]string{"first", "second", "third"}, p.StepNames()); diff != "" {
		t.Errorf("step names mismatch (-want +got):\n%s", diff)
	}
}

// TestPipelineExecute tests sequential execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(context.Context, *model.Credits) error {
					order = append(order, name)
					return nil
				},
			}
		}

		p := New()
		p.AddSteps(record("contributor"), record("translator"), record("github"))

		if err := p.Execute(context.Background(), model.NewCredits()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"contributor", "translator", "github"}, order); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("steps write to credits", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{
			name: "writer",
			doFunc: func(_ context.Context, c *model.Credits) error {
				c.Set(model.GroupContributor, model.Roster{"Alice": "https://a.example"})
				return nil
			},
		})

		credits := model.NewCredits()
		if err := p.Execute(context.Background(), credits); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credits.Len(model.GroupContributor) != 1 {
			t.Errorf("expected 1 contributor, got %d", credits.Len(model.GroupContributor))
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		failing := &mockStep{
			name:   "failing",
			doFunc: func(context.Context, *model.Credits) error { return errBoom },
		}
		after := &mockStep{name: "after"}

		p := New()
		p.AddSteps(failing, after)

		err := p.Execute(context.Background(), model.NewCredits())
		if !errors.Is(err, errBoom) {
			t.Fatalf("expected errBoom, got %v", err)
		}
		if err.Error() != "failing: boom" {
			t.Errorf("expected step name in error, got %q", err.Error())
		}
		if after.calls() != 0 {
			t.Error("expected later step not to run")
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New()
		p.AddStep(step)

		if err := p.Execute(ctx, model.NewCredits()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.calls() != 0 {
			t.Error("expected step not to run")
		}
	})

	t.Run("empty pipeline succeeds", func(t *testing.T) {
		t.Parallel()

		if err := New().Execute(context.Background(), model.NewCredits()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
