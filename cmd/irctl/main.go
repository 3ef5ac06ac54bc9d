package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/irctl/internal/config"
	"github.com/danmuck/irctl/internal/logging"
	"github.com/danmuck/irctl/internal/observability"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const usage = `usage: irctl <command> [flags]

commands:
  encode VALUE          render an XMI frame as durations
  decode [FILE|-]       decode a capture file or stdin
  serve                 run the HTTP codec service
  config init [PATH]    write a default config file
`

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	observability.InitLogger("irctl")
	os.Exit(run(os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

func run(args []string, e env) int {
	if len(args) == 0 {
		fmt.Fprint(e.stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "encode":
		err = runEncode(args[1:], e)
	case "decode":
		err = runDecode(args[1:], e)
	case "serve":
		err = runServe(args[1:], e)
	case "config":
		err = runConfig(args[1:], e)
	case "-h", "--help", "help":
		fmt.Fprint(e.stdout, usage)
		return 0
	default:
		fmt.Fprintf(e.stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(e.stderr, "irctl %s: %v\n", args[0], err)
	return 1
}

// commonFlags are accepted by every command that reads configuration.
type commonFlags struct {
	configPath string
	logLevel   string
}

func newFlagSet(name string, e env, common *commonFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVarP(&common.configPath, "config", "c", "", "path to irctl TOML config")
	fs.StringVar(&common.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error, off)")
	return fs
}

// loadConfig resolves the config file and applies its log level; a
// --log-level flag wins over the file.
func loadConfig(common commonFlags) (config.Config, error) {
	cfg := config.DefaultConfig()
	if common.configPath != "" {
		loaded, err := config.Load(common.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		log.Debug().Str("path", common.configPath).Msg("loaded config")
	}
	level := cfg.Log.Level
	if common.logLevel != "" {
		level = common.logLevel
	}
	if !logging.SetLevel(level) {
		return config.Config{}, fmt.Errorf("unknown log level %q", level)
	}
	return cfg, nil
}

func runConfig(args []string, e env) error {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	force := fs.BoolP("force", "f", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 || fs.Arg(0) != "init" {
		return fmt.Errorf("expected: config init [PATH]")
	}
	path := "irctl.toml"
	if fs.NArg() > 1 {
		path = fs.Arg(1)
	}
	if path == "-" {
		_, err := io.WriteString(e.stdout, config.Template())
		return err
	}
	if err := config.WriteTemplate(path, *force); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "wrote %s\n", path)
	return nil
}
