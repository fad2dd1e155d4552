// Command exactlu solves a system of linear equations exactly.
//
// Usage:
//
//	exactlu [-in file | -load file.json | -random] [flags]
//
// The system comes from a text file (default: stdin), a JSON document written
// by -save, or the random generator. The solution is printed as exact
// fractions.
//
// Examples:
//
//	printf '2x1 -1x2 = 1\n-4x1 +6x2 = 2\n' | exactlu
//	exactlu -random -size 4 -seed 7 -save sys.json
//	exactlu -load sys.json -trace -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/exactlu/approx"
	"github.com/katalvlaran/exactlu/eqtext"
	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/generate"
	"github.com/katalvlaran/exactlu/lu"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/store"
)

const about = `System of linear equations solver
Exact Doolittle LU factorization with forward and backward substitution.`

const formatHint = `Please provide equations in the format:
1x1 +2x2 +3x3 = 4
1x1 +2x2 +3x3 = 4
1x1 +2x2 +3x3 = 4`

type config struct {
	in, load, save string
	random         bool
	size           int
	lo, hi, seed   int64
	trace          bool
	workers        int
	check          bool
	factors        bool
	about          bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("exactlu", flag.ContinueOnError)
	fs.StringVar(&c.in, "in", "-", "text file with one equation per line (- for stdin)")
	fs.StringVar(&c.load, "load", "", "load the system from a JSON file")
	fs.StringVar(&c.save, "save", "", "save the system (and solution) to a JSON file")
	fs.BoolVar(&c.random, "random", false, "generate a random system")
	fs.IntVar(&c.size, "size", generate.DefaultSize, "random system size")
	fs.Int64Var(&c.lo, "lo", generate.DefaultLow, "lowest random entry")
	fs.Int64Var(&c.hi, "hi", generate.DefaultHigh, "highest random entry")
	fs.Int64Var(&c.seed, "seed", generate.DefaultSeed, "random seed")
	fs.BoolVar(&c.trace, "trace", false, "print every factorization step")
	fs.IntVar(&c.workers, "workers", lu.DefaultWorkers, "goroutines per elimination phase")
	fs.BoolVar(&c.check, "check", false, "cross-check against a float64 solve")
	fs.BoolVar(&c.factors, "factors", false, "print L, U and the determinant")
	fs.BoolVar(&c.about, "about", false, "print program information and exit")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.size < 1 {
		return c, fmt.Errorf("-size must be >= 1, got %d", c.size)
	}
	if c.lo > c.hi {
		return c, fmt.Errorf("-lo %d is greater than -hi %d", c.lo, c.hi)
	}
	if span := c.hi - c.lo; span < 0 || span == math.MaxInt64 {
		return c, fmt.Errorf("-lo %d -hi %d: range must hold fewer than %d values", c.lo, c.hi, int64(math.MaxInt64))
	}
	if c.workers < 1 {
		return c, fmt.Errorf("-workers must be >= 1, got %d", c.workers)
	}

	return c, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("exactlu: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if err = run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	if cfg.about {
		_, err := fmt.Fprintln(stdout, about)
		return err
	}

	eq, err := loadSystem(cfg, stdin)
	if err != nil {
		return err
	}

	opts := []lu.Option{lu.WithWorkers(cfg.workers)}
	if cfg.trace {
		opts = append(opts, lu.WithTracer(lu.WriterTracer(stdout)))
	}
	x, err := eq.Solve(opts...)
	if err != nil {
		fmt.Fprint(stdout, eqtext.FormatSystem(eq))
		return describe(err)
	}
	fmt.Fprint(stdout, eqtext.Format(eq, x))

	if cfg.factors {
		f, ferr := eq.Factorize()
		if ferr != nil {
			return describe(ferr)
		}
		fmt.Fprintf(stdout, "\nL:\n%s\nU:\n%s\ndet = %s\n", f.L, f.U, f.Determinant())
	}
	if cfg.check {
		fx, cerr := approx.Solve(eq.Matrix(), eq.Result())
		if cerr != nil {
			log.Printf("float cross-check unavailable: %v", cerr)
		} else {
			reportDeviation(stdout, x, fx)
		}
	}
	if cfg.save != "" {
		if err = store.SaveFile(cfg.save, eq); err != nil {
			return err
		}
		log.Printf("saved to %s", cfg.save)
	}

	return nil
}

// reportDeviation prints how far the float solution fx drifts from x, or logs
// why it cannot be compared.
func reportDeviation(stdout io.Writer, x matrix.Vector, fx []float64) {
	dev, err := approx.MaxDeviation(x, fx)
	if err != nil {
		log.Printf("float cross-check unavailable: %v", err)
		return
	}
	fmt.Fprintf(stdout, "\nfloat64 cross-check: max deviation %.3g\n", dev)
}

func loadSystem(cfg config, stdin io.Reader) (*equation.Equation, error) {
	switch {
	case cfg.random:
		return generate.System(
			generate.WithSize(cfg.size),
			generate.WithRange(cfg.lo, cfg.hi),
			generate.WithSeed(cfg.seed),
		)
	case cfg.load != "":
		return store.LoadFile(cfg.load)
	}

	var src []byte
	var err error
	if cfg.in == "-" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(cfg.in)
	}
	if err != nil {
		return nil, err
	}
	eq, err := eqtext.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, formatHint)
	}

	return eq, nil
}

// describe turns a solve failure into a message for the user.
func describe(err error) error {
	switch equation.Classify(err) {
	case equation.KindDimension:
		return fmt.Errorf("the coefficient matrix must be square and match the number of results (%w)", err)
	case equation.KindDecomposition:
		return fmt.Errorf("a zero pivot was met; this solver does not exchange rows (%w)", err)
	case equation.KindDivisionByZero:
		return fmt.Errorf("the system has no unique solution (%w)", err)
	default:
		return err
	}
}
