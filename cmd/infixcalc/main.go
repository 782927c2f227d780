// Command infixcalc evaluates infix expressions from arguments, stdin, or a
// batch file.
//
// With arguments, each argument is one expression and its result prints on
// its own line. With -in, the file is processed one expression per line in
// the batch format (Input/Output pairs); -out selects the result file,
// stdout by default. With neither, stdin is processed in batch format.
//
// Batch settings may also come from a YAML file via -config; explicit flags
// win over the file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/calclab/infix"
)

type config struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Overwrite bool   `yaml:"overwrite"`
	Method    string `yaml:"method"`
}

func main() {
	var (
		confpath string
		conf     = config{Method: "stack"}
	)
	flag.StringVar(&confpath, "config", "", "YAML file with batch settings")
	flag.StringVar(&conf.Input, "in", "", "input file with one expression per line")
	flag.StringVar(&conf.Output, "out", "", "output file for batch results (default stdout)")
	flag.BoolVar(&conf.Overwrite, "f", false, "allow the output file to overwrite the input file")
	flag.StringVar(&conf.Method, "method", conf.Method, "evaluation method: stack, recursive, or both")
	flag.Parse()

	if confpath != "" {
		fc, err := loadConfig(confpath)
		if err != nil {
			slog.Error("cannot load config", "path", confpath, "error", err)
			os.Exit(1)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["in"] && fc.Input != "" {
			conf.Input = fc.Input
		}
		if !set["out"] && fc.Output != "" {
			conf.Output = fc.Output
		}
		if !set["f"] {
			conf.Overwrite = fc.Overwrite
		}
		if !set["method"] && fc.Method != "" {
			conf.Method = fc.Method
		}
	}

	eval, err := evaluator(conf.Method)
	if err != nil {
		slog.Error("bad method", "method", conf.Method, "error", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		code := 0
		for _, expr := range flag.Args() {
			v, err := eval(expr)
			if err != nil {
				slog.Error("evaluation failed", "expr", expr, "error", err)
				code = 1
				continue
			}
			fmt.Println(v)
		}
		os.Exit(code)
	}

	if err := batch(conf, eval); err != nil {
		slog.Error("batch failed", "input", conf.Input, "output", conf.Output, "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config, error) {
	var c config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func batch(conf config, eval infix.EvalFunc) error {
	switch {
	case conf.Input == "":
		return infix.Process(os.Stdin, os.Stdout, eval)
	case conf.Output == "":
		src, err := os.Open(conf.Input)
		if err != nil {
			return err
		}
		defer src.Close()
		return infix.Process(src, os.Stdout, eval)
	default:
		return infix.ProcessFile(conf.Input, conf.Output, eval, conf.Overwrite)
	}
}

func evaluator(method string) (infix.EvalFunc, error) {
	switch method {
	case "stack":
		return infix.EvalStack, nil
	case "recursive":
		return infix.EvalRecursive, nil
	case "both":
		return evalBoth, nil
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}

// evalBoth runs both evaluators and fails when they disagree. Results are
// compared by their formatting so that NaN equals NaN.
func evalBoth(expr string) (infix.Value, error) {
	s, err := infix.EvalStack(expr)
	if err != nil {
		return infix.Value{}, err
	}
	r, err := infix.EvalRecursive(expr)
	if err != nil {
		return infix.Value{}, err
	}
	if s.String() != r.String() {
		return infix.Value{}, fmt.Errorf("evaluators disagree on %q: stack %v, recursive %v", expr, s, r)
	}
	return s, nil
}
