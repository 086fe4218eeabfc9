// Demo registry: a dispatch table from pattern name to runner.
// Every runner writes a short, deterministic walkthrough to w.
package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/katalvlaran/gopatterns/adapter"
	"github.com/katalvlaran/gopatterns/builder"
	"github.com/katalvlaran/gopatterns/command"
	"github.com/katalvlaran/gopatterns/composite"
	"github.com/katalvlaran/gopatterns/decorator"
	"github.com/katalvlaran/gopatterns/factory"
	"github.com/katalvlaran/gopatterns/observer"
	"github.com/katalvlaran/gopatterns/state"
	"github.com/katalvlaran/gopatterns/strategy"
)

// demos maps pattern names to their runners.
var demos = map[string]func(w io.Writer) error{
	"composite": demoComposite,
	"adapter":   demoAdapter,
	"builder":   demoBuilder,
	"command":   demoCommand,
	"decorator": demoDecorator,
	"factory":   demoFactory,
	"observer":  demoObserver,
	"state":     demoState,
	"strategy":  demoStrategy,
}

// demoNames returns the registered demo names in lexical order.
func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// runDemo dispatches name to its runner.
func runDemo(w io.Writer, name string) error {
	run, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q, try: %v", name, demoNames())
	}

	return run(w)
}

func demoComposite(w io.Writer) error {
	root := composite.NewFolder("main_folder")
	images := composite.NewFolder("images")
	if err := root.Add(composite.NewLeaf("document.txt")); err != nil {
		return err
	}
	if err := root.Add(composite.NewLeaf("report.xlsx")); err != nil {
		return err
	}
	if err := root.Add(images); err != nil {
		return err
	}
	if err := images.Add(composite.NewLeaf("photo.png")); err != nil {
		return err
	}

	return composite.Render(w, root)
}

func demoAdapter(w io.Writer) error {
	fs := memfs.New()
	if err := fs.MkdirAll("/repo/docs", 0o755); err != nil {
		return err
	}
	if err := util.WriteFile(fs, "/repo/go.mod", []byte("module demo"), 0o644); err != nil {
		return err
	}
	if err := util.WriteFile(fs, "/repo/docs/index.md", []byte("# demo"), 0o644); err != nil {
		return err
	}

	tree, err := adapter.Mirror(fs, "/repo")
	if err != nil {
		return err
	}

	return composite.Render(w, tree)
}

func demoBuilder(w io.Writer) error {
	report, err := builder.NewReport().
		Title("Catalog Health").
		Author("patterns").
		Section("Coverage", "All fourteen patterns demonstrated.").
		Footer("end of report").
		Build()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, report.Render())

	return err
}

func demoCommand(w io.Writer) error {
	var buf command.Buffer
	var hist command.History
	if err := hist.Do(command.NewInsert(&buf, "hello world")); err != nil {
		return err
	}
	if err := hist.Do(command.NewDelete(&buf, 6)); err != nil {
		return err
	}
	fmt.Fprintf(w, "after edits: %q\n", buf.String())
	if err := hist.UndoLast(); err != nil {
		return err
	}
	fmt.Fprintf(w, "after undo:  %q\n", buf.String())

	return nil
}

func demoDecorator(w io.Writer) error {
	drink := decorator.WithWhip(decorator.WithMilk(decorator.Espresso{}))
	fmt.Fprintf(w, "%s: %d cents\n", drink.Description(), drink.Cost())

	return nil
}

func demoFactory(w io.Writer) error {
	for _, kind := range factory.Kinds() {
		n, err := factory.New(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n.Notify("ops", "deploy finished"))
	}

	return nil
}

func demoObserver(w io.Writer) error {
	var s observer.Subject
	s.Subscribe(observer.NewLogObserver(w))
	s.Subscribe(observer.ObserverFunc(func(e observer.Event) {
		fmt.Fprintf(w, "plain observer saw %s\n", e.Topic)
	}))
	s.Publish(observer.Event{Topic: "demo.ran", Payload: "observer"})

	return nil
}

func demoState(w io.Writer) error {
	a := state.NewArticle("patterns in go")
	fmt.Fprintln(w, "status:", a.Status())
	if err := a.Submit(); err != nil {
		return err
	}
	fmt.Fprintln(w, "status:", a.Status())
	if err := a.Approve(); err != nil {
		return err
	}
	fmt.Fprintln(w, "status:", a.Status())
	// A published article rejects further edits.
	if err := a.Submit(); err != nil {
		fmt.Fprintln(w, "resubmit:", err)
	}

	return nil
}

func demoStrategy(w io.Writer) error {
	shipment := strategy.Shipment{WeightKg: 2.5, DistanceKm: 340}
	calc := strategy.NewCalculator(nil)
	for _, s := range []strategy.Strategy{strategy.Ground{}, strategy.Air{}, strategy.Flat{Cents: 1500}} {
		calc.SetStrategy(s)
		cents, err := calc.Quote(shipment)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-6s %d cents\n", s.Name(), cents)
	}

	return nil
}
