package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gostkin/pointers/handle"
	"github.com/gostkin/pointers/track"
)

func main() {
	var (
		script  = flag.Bool("script", false, "Run the canned ownership scenario and exit")
		verbose = flag.Bool("v", false, "Log every handle lifecycle event")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		handle.SetLogger(logger)
	}

	if *script {
		if err := runScript(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Usage: handleplay            (interactive mode, needs a terminal)")
		fmt.Fprintln(os.Stderr, "       handleplay -script    (canned scenario)")
		os.Exit(1)
	}

	if err := runInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resource is the demo payload: it announces its own destruction.
type resource struct {
	name string
}

func (r *resource) Drop() {
	fmt.Printf("  destructor ran for %q\n", r.name)
}

func runScript() error {
	reg := track.New()
	handle.Subscribe(reg)
	defer handle.Unsubscribe(reg)

	fmt.Println("== exclusive ownership")
	u := handle.NewUnique(&resource{name: "unique"})
	fmt.Printf("  owner holds %q\n", u.Value().name)
	m := u.Move()
	fmt.Printf("  after move: source empty=%v, destination empty=%v\n", u.Empty(), m.Empty())
	m.Drop()

	fmt.Println("== shared ownership")
	a := handle.NewShared(&resource{name: "shared"})
	b := a.Clone()
	fmt.Printf("  two owners, use count %d\n", a.UseCount())
	a.Drop()
	fmt.Printf("  one owner left, use count %d\n", b.UseCount())

	fmt.Println("== weak observation")
	w := b.Downgrade()
	fmt.Printf("  expired=%v while an owner lives\n", w.Expired())
	if s := w.Lock(); !s.Empty() {
		fmt.Printf("  promoted, use count %d\n", s.UseCount())
		s.Drop()
	}
	b.Drop()
	fmt.Printf("  expired=%v after the last owner dropped\n", w.Expired())
	fmt.Printf("  lock on expired weak is empty: %v\n", w.Lock().Empty())
	w.Drop()

	fmt.Println("== leak check")
	leaked := handle.NewShared(&resource{name: "leaked"})
	defer leaked.Drop()
	err := reg.Close()
	switch {
	case errors.Is(err, track.ErrLeaked):
		fmt.Printf("  registry caught the leak: %v\n", err)
		return nil
	case err != nil:
		return err
	default:
		return errors.New("registry missed a deliberate leak")
	}
}
