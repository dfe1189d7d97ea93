package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Aaron-zon/unocss/internal/config"
	"github.com/Aaron-zon/unocss/internal/csscolor"
	"github.com/Aaron-zon/unocss/internal/extractor"
	"github.com/Aaron-zon/unocss/internal/log"
	"github.com/Aaron-zon/unocss/variants"
)

const usageText = `usage:
  unocss mix <tint|shade|shift> <weight> <color>
  unocss match [-c config] <token>
  unocss scan [-c config] [path ...]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "mix":
		err = runMix(os.Args[2:])
	case "match":
		err = runMatch(os.Args[2:])
	case "scan":
		err = runScan(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// runMix applies one mixing operation to one color and prints the result.
func runMix(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("mix expects <tint|shade|shift> <weight> <color>")
	}
	mode, weight, text := args[0], args[1], args[2]

	color := csscolor.Parse(text)
	if color == nil {
		return fmt.Errorf("%q is not an RGB-family color", text)
	}

	var mixed *csscolor.Color
	switch mode {
	case "tint":
		mixed = csscolor.Tint(color, weight)
	case "shade":
		mixed = csscolor.Shade(color, weight)
	case "shift":
		mixed = csscolor.Shift(color, weight)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if mixed == nil {
		return fmt.Errorf("cannot mix %q at weight %q", text, weight)
	}

	fmt.Println(mixed.String())
	return nil
}

// runMatch runs the mix rule against a single token and reports the match.
func runMatch(args []string) error {
	flags := flag.NewFlagSet("match", flag.ExitOnError)
	configPath := flags.String("c", "", "path to a generator config file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("match expects exactly one token")
	}
	token := flags.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	rule := variants.NewColorMix(cfg.Separators)
	result, ok := rule.Match(token)
	if !ok {
		fmt.Printf("no match: %s\n", token)
		return nil
	}

	op := result.Operation
	fmt.Printf("rule=%s mode=%s weight=%s consumed=%d rest=%s\n",
		rule.Name(), op.Mode, op.Weight, result.Consumed, result.Matcher)
	return nil
}

// runScan extracts candidate tokens from the content files and prints the
// ones the mix rule matches.
func runScan(args []string) error {
	flags := flag.NewFlagSet("scan", flag.ExitOnError)
	configPath := flags.String("c", "", "path to a generator config file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	files := flags.Args()
	if len(files) == 0 {
		files, err = cfg.ContentFiles()
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no content files to scan")
	}

	rules := []variants.Rule{variants.NewColorMix(cfg.Separators)}
	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // G304: user-supplied content path
		if err != nil {
			log.Warn("skipping %s: %v", file, err)
			continue
		}
		for _, token := range extractor.Extract(string(data)) {
			rule, result, ok := variants.Dispatch(token, rules)
			if !ok {
				continue
			}
			op := result.Operation
			fmt.Printf("%s: %s (%s %s %s, rest=%s)\n",
				file, token, rule.Name(), op.Mode, op.Weight, result.Matcher)
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
